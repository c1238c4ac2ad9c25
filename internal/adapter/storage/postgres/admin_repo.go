package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AdminRepo implements ports.AdminRepository.
type AdminRepo struct {
	pool Pool
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(pool Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// EnsureByUsername returns the admin row for username, inserting it on first use.
func (r *AdminRepo) EnsureByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `INSERT INTO admins (id, username, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, username, created_at`

	a := &domain.Admin{}
	err := r.pool.QueryRow(ctx, query, uuid.New(), username, time.Now().UTC()).
		Scan(&a.ID, &a.Username, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ensure admin: %w", err)
	}
	return a, nil
}

// GetByID fetches an admin by id.
func (r *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	a := &domain.Admin{}
	err := r.pool.QueryRow(ctx, `SELECT id, username, created_at FROM admins WHERE id = $1`, id).
		Scan(&a.ID, &a.Username, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by id: %w", err)
	}
	return a, nil
}
