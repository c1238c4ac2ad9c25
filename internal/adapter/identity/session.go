package identity

import (
	"context"
	"net/http"
	"sync"

	"oyunfor-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type loginResponse struct {
	SessionToken string `json:"sessionToken"`
}

type userInfoResponse struct {
	User ports.IdentityUser `json:"user"`
}

// Session is one flow's login state against the identity service.
type Session struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger

	mu     sync.Mutex
	token  string
	subs   map[int]func(ports.IdentityEvent)
	nextID int
	closed bool
}

// Login opens an identity session and publishes IdentityLoggedIn.
func (s *Session) Login(ctx context.Context) error {
	var resp loginResponse
	if err := do(ctx, s.client, s.baseURL, http.MethodPost, "/v1/sessions", "", nil, &resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = resp.SessionToken
	s.mu.Unlock()

	s.publish(ports.IdentityLoggedIn)
	return nil
}

// Logout ends the identity session and publishes IdentityLoggedOut.
func (s *Session) Logout(ctx context.Context) error {
	token := s.bearer()
	if token == "" {
		return nil
	}
	if err := do(ctx, s.client, s.baseURL, http.MethodDelete, "/v1/sessions/current", token, nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	s.publish(ports.IdentityLoggedOut)
	return nil
}

func (s *Session) IsLoggedIn() bool {
	return s.bearer() != ""
}

// IssueCredential asks the identity service to issue a credential to the logged-in user.
func (s *Session) IssueCredential(ctx context.Context, p ports.IssueCredentialParams) error {
	return do(ctx, s.client, s.baseURL, http.MethodPost, "/v1/credentials/issue", s.bearer(), p, nil)
}

// VerifyCredential runs the identity service's proof verification and returns its verdict.
func (s *Session) VerifyCredential(ctx context.Context, p ports.VerifyCredentialParams) (*ports.VerificationResult, error) {
	var result ports.VerificationResult
	if err := do(ctx, s.client, s.baseURL, http.MethodPost, "/v1/credentials/verify", s.bearer(), p, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Session) GetUserInfo(ctx context.Context) (*ports.IdentityUser, error) {
	var resp userInfoResponse
	if err := do(ctx, s.client, s.baseURL, http.MethodGet, "/v1/users/me", s.bearer(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Subscribe registers fn for login state changes. The returned func releases it.
func (s *Session) Subscribe(fn func(ports.IdentityEvent)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close drops every subscription. The remote session is left to expire.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(ports.IdentityEvent))
}

func (s *Session) bearer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// publish runs subscribers outside the lock so they may call back into the session.
func (s *Session) publish(ev ports.IdentityEvent) {
	s.mu.Lock()
	fns := make([]func(ports.IdentityEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
	s.log.Debug().Str("event", string(ev)).Int("subscribers", len(fns)).Msg("identity event")
}
