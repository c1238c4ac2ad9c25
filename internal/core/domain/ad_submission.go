package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdSubmissionStatus represents the review lifecycle of an ad campaign.
type AdSubmissionStatus string

const (
	AdStatusPending  AdSubmissionStatus = "PENDING"
	AdStatusApproved AdSubmissionStatus = "APPROVED"
	AdStatusRejected AdSubmissionStatus = "REJECTED"
	AdStatusActive   AdSubmissionStatus = "ACTIVE"
	AdStatusExpired  AdSubmissionStatus = "EXPIRED"
)

// IsValid reports whether s is one of the known statuses.
func (s AdSubmissionStatus) IsValid() bool {
	switch s {
	case AdStatusPending, AdStatusApproved, AdStatusRejected, AdStatusActive, AdStatusExpired:
		return true
	}
	return false
}

// AdSubmission is a partner ad campaign awaiting or past review.
type AdSubmission struct {
	ID                uuid.UUID          `json:"id"`
	AdName            string             `json:"ad_name"`
	AdDescription     string             `json:"ad_description"`
	MaximumIssuance   int                `json:"maximum_issuance"`
	AccessibleFrom    time.Time          `json:"accessible_from"`
	AccessibleUntil   time.Time          `json:"accessible_until"`
	ContactEmail      string             `json:"contact_email"`
	ContactPersonName string             `json:"contact_person_name"`
	Status            AdSubmissionStatus `json:"status"`
	CreatedByID       *uuid.UUID         `json:"created_by_id,omitempty"`
	CreatedByUsername *string            `json:"created_by_username,omitempty"` // joined from admins
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// HasValidWindow reports whether the accessibility window ends strictly after it starts.
func (a *AdSubmission) HasValidWindow() bool {
	return a.AccessibleUntil.After(a.AccessibleFrom)
}

// AdSubmissionStats holds submission counts by status.
type AdSubmissionStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Active   int64 `json:"active"`
	Rejected int64 `json:"rejected"`
	Expired  int64 `json:"expired"`
}
