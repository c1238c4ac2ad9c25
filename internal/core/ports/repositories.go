package ports

import (
	"context"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks oyunfor-gateway/internal/core/ports UserRepository,AdSubmissionRepository,AdminRepository,AuditRepository

// UserRepository persists users keyed by wallet address.
// Lookups return nil, nil when no row matches.
type UserRepository interface {
	// Upsert inserts or updates by wallet address and reports whether a row was inserted.
	Upsert(ctx context.Context, user *domain.User) (bool, error)
	GetByIdentityID(ctx context.Context, identityID string) (*domain.User, error)
	GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, verified bool) (*domain.User, error)
}

// AdSubmissionRepository persists ad submissions.
type AdSubmissionRepository interface {
	Create(ctx context.Context, sub *domain.AdSubmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdSubmission, error)
	// List returns every submission newest first, with the creator username joined.
	List(ctx context.Context) ([]domain.AdSubmission, error)
	// UpdateStatus returns false when the row does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdSubmissionStatus) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountByStatus(ctx context.Context) (*domain.AdSubmissionStats, error)
}

// AdminRepository persists staff accounts.
type AdminRepository interface {
	// EnsureByUsername returns the admin with username, creating it if needed.
	EnsureByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
