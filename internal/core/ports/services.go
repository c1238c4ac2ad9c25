package ports

import (
	"context"
	"time"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks oyunfor-gateway/internal/core/ports PartnerTokenService,AdminTokenService,BalanceService,UserService,AdSubmissionService,AuditService,PriceCache

// PartnerTokenService signs short-lived partner authorization tokens.
type PartnerTokenService interface {
	Sign(ctx context.Context, scope domain.TokenScope) (string, error)
	// JWKS returns the JSON Web Key Set exposing the verification key.
	JWKS() ([]byte, error)
}

// AdminTokenService handles admin bearer tokens.
type AdminTokenService interface {
	Generate(adminID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*AdminClaims, error)
}

// AdminClaims holds the parsed admin token claims.
type AdminClaims struct {
	AdminID  uuid.UUID
	Username string
}

// BalanceService values a wallet through the balance oracle.
type BalanceService interface {
	Snapshot(ctx context.Context, address string) (*domain.BalanceSnapshot, error)
}

// CreateUserInput is the issuance-time upsert payload.
type CreateUserInput struct {
	WalletAddress      string
	IdentityID         string
	IdentityEmail      string
	IsCredentialIssued bool
	CredentialSubject  string
}

// UserService manages credentialed users.
type UserService interface {
	CreateOrUpdate(ctx context.Context, in CreateUserInput) (*domain.User, bool, error)
	GetByIdentityID(ctx context.Context, identityID string) (*domain.User, error)
	GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error)
	UpdateVerification(ctx context.Context, identityID string, verified bool) (*domain.User, error)
	CheckStatus(ctx context.Context, identityID string) (domain.UserStatus, error)
}

// CreateAdSubmissionInput holds validated form input.
type CreateAdSubmissionInput struct {
	AdName            string
	AdDescription     string
	MaximumIssuance   int
	AccessibleFrom    time.Time
	AccessibleUntil   time.Time
	ContactEmail      string
	ContactPersonName string
	CreatedByID       *uuid.UUID
}

// AdSubmissionService manages partner ad campaigns.
type AdSubmissionService interface {
	Create(ctx context.Context, in CreateAdSubmissionInput) (*domain.AdSubmission, error)
	List(ctx context.Context) ([]domain.AdSubmission, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AdSubmission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdSubmissionStatus) (*domain.AdSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.AdSubmissionStats, error)
	// ExportCSV renders every submission and returns the file name and body.
	ExportCSV(ctx context.Context, now time.Time) (string, []byte, error)
}

// AuditService records audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// PriceCache is the Redis-layer spot price cache.
type PriceCache interface {
	// Get returns ok=false when the price is not cached.
	Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error
}
