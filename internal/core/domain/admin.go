package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a staff member allowed to manage ad submissions.
type Admin struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
