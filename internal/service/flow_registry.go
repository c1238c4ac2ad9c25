package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"oyunfor-gateway/internal/adapter/metrics"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Flow kinds, used as the metrics label and in logs.
const (
	FlowIssuance     = "issuance"
	FlowVerification = "verification"
)

// WalletPrompt tells the browser what the wallet bridge is waiting for.
type WalletPrompt struct {
	ConnectRequested bool   `json:"connect_requested"`
	PendingSignature string `json:"pending_signature,omitempty"`
}

// IssuanceSessionView is an issuance flow as returned to the browser.
type IssuanceSessionView struct {
	ID              string `json:"id"`
	IdentitySession string `json:"identity_session"`
	IssuanceView
	Wallet WalletPrompt `json:"wallet"`
}

// VerificationSessionView is a verification flow as returned to the browser.
type VerificationSessionView struct {
	ID              string `json:"id"`
	IdentitySession string `json:"identity_session"`
	VerificationView
	Redirect *domain.Redirect `json:"redirect"`
}

// navRecorder is the Navigator of a hosted verification flow: the browser
// follows the redirect it finds in the next view.
type navRecorder struct {
	mu       sync.Mutex
	redirect *domain.Redirect
}

func (n *navRecorder) Navigate(r domain.Redirect) {
	n.mu.Lock()
	n.redirect = &r
	n.mu.Unlock()
}

func (n *navRecorder) get() *domain.Redirect {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.redirect == nil {
		return nil
	}
	r := *n.redirect
	return &r
}

type flowSession struct {
	id           string
	kind         string
	identity     string // identity session handle
	issuance     *IssuanceController
	wallet       ports.WalletBridge
	verification *VerificationController
	nav          *navRecorder

	busy     atomic.Bool
	lastSeen time.Time // guarded by FlowRegistry.mu
}

func (s *flowSession) close() {
	if s.issuance != nil {
		s.issuance.Close()
	}
	if s.verification != nil {
		s.verification.Close()
	}
}

// FlowDeps are the shared collaborators every hosted flow draws from.
type FlowDeps struct {
	Provider  ports.IdentityProvider
	Tokens    ports.PartnerTokenService
	Balances  ports.BalanceService
	Users     ports.UserService
	NewWallet func() ports.WalletBridge
	NewTicker TickerFactory
	Metrics   *metrics.Metrics
	Log       zerolog.Logger
}

// FlowRegistry hosts the per-tab issuance and verification flows.
type FlowRegistry struct {
	deps         FlowDeps
	issuance     IssuanceSettings
	verification VerificationSettings
	ttl          time.Duration
	now          func() time.Time

	mu         sync.Mutex
	sessions   map[string]*flowSession
	identities map[string]*identityEntry

	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewFlowRegistry creates an empty registry. Idle sessions older than ttl
// are reaped once the janitor is started.
func NewFlowRegistry(deps FlowDeps, issuance IssuanceSettings, verification VerificationSettings, ttl time.Duration) *FlowRegistry {
	return &FlowRegistry{
		deps:         deps,
		issuance:     issuance,
		verification: verification,
		ttl:          ttl,
		now:          time.Now,
		sessions:     make(map[string]*flowSession),
		identities:   make(map[string]*identityEntry),
		stop:         make(chan struct{}),
	}
}

// MountIssuance initializes the identity provider if needed and starts an
// issuance flow on the identity session behind identityHandle. An empty or
// unknown handle gets a new logged-out session.
func (r *FlowRegistry) MountIssuance(ctx context.Context, identityHandle string) (*IssuanceSessionView, error) {
	if err := r.deps.Provider.Init(ctx); err != nil {
		r.deps.Log.Warn().Err(err).Msg("identity provider init reported an error")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bridge := r.deps.NewWallet()
	id := uuid.NewString()
	lease, handle := r.leaseIdentity(identityHandle)
	ctl := NewIssuanceController(IssuanceDeps{
		Identity: lease,
		Wallet:   bridge,
		Balances: r.deps.Balances,
		Tokens:   r.deps.Tokens,
		Users:    r.deps.Users,
		Metrics:  r.deps.Metrics,
		Log:      r.deps.Log.With().Str("flow_id", id).Str("flow", FlowIssuance).Logger(),
	}, r.issuance)

	s := &flowSession{id: id, kind: FlowIssuance, identity: handle, issuance: ctl, wallet: bridge}
	r.add(s)
	return r.issuanceView(s), nil
}

// MountVerification starts a verification flow for params on the identity
// session behind identityHandle, like MountIssuance.
func (r *FlowRegistry) MountVerification(params domain.VerifierParams, identityHandle string) *VerificationSessionView {
	id := uuid.NewString()
	nav := &navRecorder{}
	lease, handle := r.leaseIdentity(identityHandle)
	ctl := NewVerificationController(VerificationDeps{
		Provider:  r.deps.Provider,
		Identity:  lease,
		Tokens:    r.deps.Tokens,
		Navigator: nav,
		NewTicker: r.deps.NewTicker,
		Metrics:   r.deps.Metrics,
		Log:       r.deps.Log.With().Str("flow_id", id).Str("flow", FlowVerification).Logger(),
	}, r.verification, params)

	s := &flowSession{id: id, kind: FlowVerification, identity: handle, verification: ctl, nav: nav}
	r.add(s)
	return r.verificationView(s)
}

// RunIssuance runs one issuance action and returns the resulting view.
func (r *FlowRegistry) RunIssuance(ctx context.Context, id, action string) (*IssuanceSessionView, error) {
	s, err := r.acquire(id, FlowIssuance)
	if err != nil {
		return nil, err
	}
	defer s.busy.Store(false)

	ctl := s.issuance
	switch action {
	case ActionLogin:
		err = ctl.Login(ctx)
	case ActionConnectWallet:
		err = ctl.ConnectWallet(ctx)
	case ActionRefreshBalance:
		err = ctl.RefreshBalance(ctx)
	case ActionIssue:
		err = ctl.Issue(ctx)
	case ActionDisconnectWallet:
		err = ctl.DisconnectWallet(ctx)
	case ActionSwitchWallet:
		err = ctl.SwitchWallet(ctx)
	default:
		err = apperror.ErrTransitionNotAllowed(action, ctl.View().StepName)
	}
	if err != nil {
		return nil, err
	}
	return r.issuanceView(s), nil
}

// ReportWalletAddress forwards the browser's connected address to the
// flow's wallet bridge. An empty address means the wallet disconnected.
func (r *FlowRegistry) ReportWalletAddress(id, address string) (*IssuanceSessionView, error) {
	s, err := r.acquire(id, FlowIssuance)
	if err != nil {
		return nil, err
	}
	defer s.busy.Store(false)

	if err := s.wallet.ReportAddress(address); err != nil {
		return nil, err
	}
	return r.issuanceView(s), nil
}

// SubmitSignature answers the flow's pending signature request. It does not
// take the action guard: the request is awaited by a background task.
func (r *FlowRegistry) SubmitSignature(id, signature string) (*IssuanceSessionView, error) {
	s, err := r.lookup(id, FlowIssuance)
	if err != nil {
		return nil, err
	}
	if err := s.wallet.SubmitSignature(signature); err != nil {
		return nil, err
	}
	return r.issuanceView(s), nil
}

// IssuanceView returns the current view of an issuance flow.
func (r *FlowRegistry) IssuanceView(id string) (*IssuanceSessionView, error) {
	s, err := r.lookup(id, FlowIssuance)
	if err != nil {
		return nil, err
	}
	return r.issuanceView(s), nil
}

// RunVerification runs one verification action and returns the resulting view.
func (r *FlowRegistry) RunVerification(ctx context.Context, id, action string) (*VerificationSessionView, error) {
	s, err := r.acquire(id, FlowVerification)
	if err != nil {
		return nil, err
	}
	defer s.busy.Store(false)

	ctl := s.verification
	switch action {
	case ActionVerify:
		err = ctl.Verify(ctx)
	case ActionRetry:
		err = ctl.Retry(ctx)
	default:
		err = apperror.ErrTransitionNotAllowed(action, string(ctl.View().Status))
	}
	if err != nil {
		return nil, err
	}
	return r.verificationView(s), nil
}

// VerificationView returns the current view of a verification flow.
func (r *FlowRegistry) VerificationView(id string) (*VerificationSessionView, error) {
	s, err := r.lookup(id, FlowVerification)
	if err != nil {
		return nil, err
	}
	return r.verificationView(s), nil
}

// Teardown removes a flow of the given kind and closes its controller.
func (r *FlowRegistry) Teardown(id, kind string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok || s.kind != kind {
		r.mu.Unlock()
		return apperror.ErrFlowNotFound()
	}
	delete(r.sessions, id)
	r.mu.Unlock()

	r.closeSession(s, "teardown")
	return nil
}

// Len reports the number of live sessions.
func (r *FlowRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Reap tears down every session idle for longer than the ttl and reports
// how many were removed. Identity sessions no flow has held for the ttl are
// closed as well.
func (r *FlowRegistry) Reap() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*flowSession
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) && !s.busy.Load() {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		r.closeSession(s, "expired")
	}
	if n := r.reapIdentities(cutoff); n > 0 {
		r.deps.Log.Debug().Int("count", n).Msg("closed idle identity sessions")
	}
	return len(expired)
}

// Start runs the janitor every interval until ctx is done or Stop is called.
func (r *FlowRegistry) Start(ctx context.Context, interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-ticker.C:
				if n := r.Reap(); n > 0 {
					r.deps.Log.Info().Int("count", n).Msg("reaped idle flow sessions")
				}
			}
		}
	}()
}

// Stop halts the janitor and tears down every remaining session.
func (r *FlowRegistry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	r.wg.Wait()

	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*flowSession)
	r.mu.Unlock()

	for _, s := range sessions {
		r.closeSession(s, "shutdown")
	}
	r.closeIdentities()
}

func (r *FlowRegistry) add(s *flowSession) {
	r.mu.Lock()
	s.lastSeen = r.now()
	r.sessions[s.id] = s
	r.mu.Unlock()

	r.deps.Metrics.FlowMounted(s.kind)
	r.deps.Log.Debug().Str("flow_id", s.id).Str("flow", s.kind).Msg("flow mounted")
}

func (r *FlowRegistry) closeSession(s *flowSession, reason string) {
	s.close()
	r.deps.Metrics.FlowTornDown(s.kind)
	r.deps.Log.Debug().Str("flow_id", s.id).Str("flow", s.kind).Str("reason", reason).Msg("flow torn down")
}

// lookup finds a session and marks it as seen.
func (r *FlowRegistry) lookup(id, kind string) (*flowSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.kind != kind {
		return nil, apperror.ErrFlowNotFound()
	}
	s.lastSeen = r.now()
	r.touchIdentityLocked(s.identity)
	return s, nil
}

// acquire is lookup plus the per-session action guard. The caller must
// release the guard with s.busy.Store(false).
func (r *FlowRegistry) acquire(id, kind string) (*flowSession, error) {
	s, err := r.lookup(id, kind)
	if err != nil {
		return nil, err
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, apperror.ErrFlowBusy()
	}
	return s, nil
}

func (r *FlowRegistry) issuanceView(s *flowSession) *IssuanceSessionView {
	v := &IssuanceSessionView{
		ID:              s.id,
		IdentitySession: s.identity,
		IssuanceView:    s.issuance.View(),
		Wallet:          WalletPrompt{ConnectRequested: s.wallet.ConnectRequested()},
	}
	if msg, ok := s.wallet.PendingMessage(); ok {
		v.Wallet.PendingSignature = msg
	}
	return v
}

func (r *FlowRegistry) verificationView(s *flowSession) *VerificationSessionView {
	return &VerificationSessionView{
		ID:               s.id,
		IdentitySession:  s.identity,
		VerificationView: s.verification.View(),
		Redirect:         s.nav.get(),
	}
}
