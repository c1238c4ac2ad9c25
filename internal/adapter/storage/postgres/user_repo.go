package postgres

import (
	"context"
	"errors"
	"fmt"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, wallet_address, identity_id, identity_email, is_credential_issued,
	credential_subject, is_verified, verified_at, created_at, updated_at`

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.WalletAddress, &u.IdentityID, &u.IdentityEmail, &u.IsCredentialIssued,
		&u.CredentialSubject, &u.IsVerified, &u.VerifiedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Upsert inserts a user or updates the row with the same wallet address.
// The credential subject is kept when the new value is NULL.
func (r *UserRepo) Upsert(ctx context.Context, u *domain.User) (bool, error) {
	query := `INSERT INTO users (id, wallet_address, identity_id, identity_email, is_credential_issued, credential_subject, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (wallet_address) DO UPDATE SET
			identity_id = EXCLUDED.identity_id,
			identity_email = EXCLUDED.identity_email,
			is_credential_issued = EXCLUDED.is_credential_issued,
			credential_subject = COALESCE(EXCLUDED.credential_subject, users.credential_subject),
			updated_at = EXCLUDED.updated_at
		RETURNING id, is_verified, verified_at, created_at, updated_at, (xmax = 0) AS inserted`

	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		u.ID, u.WalletAddress, u.IdentityID, u.IdentityEmail,
		u.IsCredentialIssued, u.CredentialSubject, u.UpdatedAt,
	).Scan(&u.ID, &u.IsVerified, &u.VerifiedAt, &u.CreatedAt, &u.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert user: %w", err)
	}
	return inserted, nil
}

// GetByIdentityID fetches the first user linked to an identity account.
func (r *UserRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE identity_id = $1 ORDER BY created_at LIMIT 1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, identityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by identity_id: %w", err)
	}
	return u, nil
}

// GetByWalletAddress fetches a user by wallet address.
func (r *UserRepo) GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE wallet_address = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, walletAddress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by wallet_address: %w", err)
	}
	return u, nil
}

// UpdateVerification sets is_verified and stamps or clears verified_at.
func (r *UserRepo) UpdateVerification(ctx context.Context, id uuid.UUID, verified bool) (*domain.User, error) {
	query := `UPDATE users SET
			is_verified = $2,
			verified_at = CASE WHEN $2 THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.pool.QueryRow(ctx, query, id, verified))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user verification: %w", err)
	}
	return u, nil
}
