package integration

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"oyunfor-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by lower-cased wallet address
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *inMemoryUserRepo) Upsert(ctx context.Context, u *domain.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.WalletAddress)
	existing, ok := r.users[key]
	if !ok {
		u.CreatedAt = u.UpdatedAt
		cp := *u
		r.users[key] = &cp
		return true, nil
	}

	existing.IdentityID = u.IdentityID
	existing.IdentityEmail = u.IdentityEmail
	existing.IsCredentialIssued = u.IsCredentialIssued
	if u.CredentialSubject != nil {
		existing.CredentialSubject = u.CredentialSubject
	}
	existing.UpdatedAt = u.UpdatedAt

	u.ID = existing.ID
	u.IsVerified = existing.IsVerified
	u.VerifiedAt = existing.VerifiedAt
	u.CreatedAt = existing.CreatedAt
	return false, nil
}

func (r *inMemoryUserRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.IdentityID == identityID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(walletAddress)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) UpdateVerification(ctx context.Context, id uuid.UUID, verified bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		now := time.Now().UTC()
		u.IsVerified = verified
		u.VerifiedAt = nil
		if verified {
			u.VerifiedAt = &now
		}
		u.UpdatedAt = now
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

// --- In-Memory Admin Repo ---

type inMemoryAdminRepo struct {
	mu     sync.RWMutex
	admins map[uuid.UUID]*domain.Admin
}

func newInMemoryAdminRepo() *inMemoryAdminRepo {
	return &inMemoryAdminRepo{admins: make(map[uuid.UUID]*domain.Admin)}
}

func (r *inMemoryAdminRepo) EnsureByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	a := &domain.Admin{ID: uuid.New(), Username: username, CreatedAt: time.Now().UTC()}
	r.admins[a.ID] = a
	return a, nil
}

func (r *inMemoryAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

// --- In-Memory Ad Submission Repo ---

type inMemoryAdSubmissionRepo struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*domain.AdSubmission
	admins *inMemoryAdminRepo
}

func newInMemoryAdSubmissionRepo(admins *inMemoryAdminRepo) *inMemoryAdSubmissionRepo {
	return &inMemoryAdSubmissionRepo{subs: make(map[uuid.UUID]*domain.AdSubmission), admins: admins}
}

func (r *inMemoryAdSubmissionRepo) Create(ctx context.Context, sub *domain.AdSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sub
	r.subs[sub.ID] = &cp
	return nil
}

// withCreator mimics the admins join of the SQL repository.
func (r *inMemoryAdSubmissionRepo) withCreator(ctx context.Context, s *domain.AdSubmission) *domain.AdSubmission {
	cp := *s
	if cp.CreatedByID != nil {
		if a, _ := r.admins.GetByID(ctx, *cp.CreatedByID); a != nil {
			name := a.Username
			cp.CreatedByUsername = &name
		}
	}
	return &cp
}

func (r *inMemoryAdSubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	return r.withCreator(ctx, s), nil
}

func (r *inMemoryAdSubmissionRepo) List(ctx context.Context) ([]domain.AdSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.AdSubmission, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, *r.withCreator(ctx, s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryAdSubmissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdSubmissionStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[id]
	if !ok {
		return false, nil
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemoryAdSubmissionRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[id]; !ok {
		return false, nil
	}
	delete(r.subs, id)
	return true, nil
}

func (r *inMemoryAdSubmissionRepo) CountByStatus(ctx context.Context) (*domain.AdSubmissionStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &domain.AdSubmissionStats{}
	for _, s := range r.subs {
		stats.Total++
		switch s.Status {
		case domain.AdStatusPending:
			stats.Pending++
		case domain.AdStatusApproved:
			stats.Approved++
		case domain.AdStatusActive:
			stats.Active++
		case domain.AdStatusRejected:
			stats.Rejected++
		case domain.AdStatusExpired:
			stats.Expired++
		}
	}
	return stats, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *inMemoryAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, l.Action)
	}
	return out
}
