package service

import (
	"context"
	"strings"
	"time"

	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"

	"github.com/google/uuid"
)

type userService struct {
	repo ports.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo ports.UserRepository) ports.UserService {
	return &userService{repo: repo}
}

// CreateOrUpdate upserts the user by wallet address and reports whether it was new.
func (s *userService) CreateOrUpdate(ctx context.Context, in ports.CreateUserInput) (*domain.User, bool, error) {
	if strings.TrimSpace(in.WalletAddress) == "" {
		return nil, false, apperror.Validation("Wallet address is required")
	}
	if strings.TrimSpace(in.IdentityID) == "" {
		return nil, false, apperror.Validation("Identity ID is required")
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:                 uuid.New(),
		WalletAddress:      in.WalletAddress,
		IdentityID:         in.IdentityID,
		IdentityEmail:      in.IdentityEmail,
		IsCredentialIssued: in.IsCredentialIssued,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if in.CredentialSubject != "" {
		subject := in.CredentialSubject
		u.CredentialSubject = &subject
	}

	inserted, err := s.repo.Upsert(ctx, u)
	if err != nil {
		return nil, false, apperror.ErrDatabaseError(err)
	}
	return u, inserted, nil
}

func (s *userService) GetByIdentityID(ctx context.Context, identityID string) (*domain.User, error) {
	if identityID == "" {
		return nil, apperror.Validation("Identity ID is required")
	}
	u, err := s.repo.GetByIdentityID(ctx, identityID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if u == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return u, nil
}

func (s *userService) GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error) {
	if walletAddress == "" {
		return nil, apperror.Validation("Wallet address is required")
	}
	u, err := s.repo.GetByWalletAddress(ctx, walletAddress)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if u == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return u, nil
}

// UpdateVerification sets the verified flag. verified_at follows it.
func (s *userService) UpdateVerification(ctx context.Context, identityID string, verified bool) (*domain.User, error) {
	u, err := s.GetByIdentityID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateVerification(ctx, u.ID, verified)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if updated == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return updated, nil
}

// CheckStatus reports what is known about an identity user. A missing user
// is a valid status, not an error.
func (s *userService) CheckStatus(ctx context.Context, identityID string) (domain.UserStatus, error) {
	if identityID == "" {
		return domain.UserStatus{}, apperror.Validation("Identity ID is required")
	}
	u, err := s.repo.GetByIdentityID(ctx, identityID)
	if err != nil {
		return domain.UserStatus{}, apperror.ErrDatabaseError(err)
	}
	return domain.StatusOf(u), nil
}
