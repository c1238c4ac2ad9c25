package service

import (
	"context"
	"testing"
	"time"

	"oyunfor-gateway/internal/adapter/metrics"
	"oyunfor-gateway/internal/adapter/wallet"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/internal/core/ports/mocks"
	"oyunfor-gateway/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type registryHarness struct {
	ctrl     *gomock.Controller
	provider *mocks.MockIdentityProvider
	tokens   *mocks.MockPartnerTokenService
	balances *mocks.MockBalanceService
	users    *mocks.MockUserService
	metrics  *metrics.Metrics
	clock    *fakeClock
	registry *FlowRegistry
}

func newRegistryHarness(t *testing.T) *registryHarness {
	ctrl := gomock.NewController(t)
	h := &registryHarness{
		ctrl:     ctrl,
		provider: mocks.NewMockIdentityProvider(ctrl),
		tokens:   mocks.NewMockPartnerTokenService(ctrl),
		balances: mocks.NewMockBalanceService(ctrl),
		users:    mocks.NewMockUserService(ctrl),
		metrics:  metrics.New(prometheus.NewRegistry()),
		clock:    &fakeClock{},
	}
	log := newTestLogger()
	h.registry = NewFlowRegistry(FlowDeps{
		Provider:  h.provider,
		Tokens:    h.tokens,
		Balances:  h.balances,
		Users:     h.users,
		NewWallet: func() ports.WalletBridge { return wallet.NewBridge(log) },
		NewTicker: h.clock.NewTicker,
		Metrics:   h.metrics,
		Log:       log,
	}, IssuanceSettings{
		PartnerID: "oyunfor",
		SiteName:  "Oyunfor",
	}, VerificationSettings{
		ProgramID:   "prog-1",
		RedirectURL: "/issue",
	}, 30*time.Minute)
	return h
}

// session returns a fresh identity session mock that expects to be closed
// once, when the registry reaps it or stops.
func (h *registryHarness) session(loggedIn bool) *mocks.MockIdentitySession {
	s := mocks.NewMockIdentitySession(h.ctrl)
	s.EXPECT().IsLoggedIn().Return(loggedIn).AnyTimes()
	s.EXPECT().Subscribe(gomock.Any()).Return(func() {}).AnyTimes()
	s.EXPECT().Close().Times(1)
	return s
}

func (h *registryHarness) mountIssuance(t *testing.T, loggedIn bool) *IssuanceSessionView {
	h.provider.EXPECT().Init(gomock.Any()).Return(nil)
	h.provider.EXPECT().Acquire().Return(h.session(loggedIn))
	view, err := h.registry.MountIssuance(context.Background(), "")
	require.NoError(t, err)
	return view
}

func requireFlowError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestFlowRegistry_IssuanceLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	h := newRegistryHarness(t)
	ctx := context.Background()

	view := h.mountIssuance(t, true)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, 2, view.Step)
	assert.False(t, view.Wallet.ConnectRequested)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.ActiveFlows.WithLabelValues(FlowIssuance)))

	view, err := h.registry.RunIssuance(ctx, view.ID, ActionConnectWallet)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Step)
	assert.True(t, view.Wallet.ConnectRequested)
	assert.False(t, view.WalletConnected)

	h.balances.EXPECT().Snapshot(gomock.Any(), testWallet).Return(fundedSnapshot(testWallet), nil)
	view, err = h.registry.ReportWalletAddress(view.ID, testWallet)
	require.NoError(t, err)
	assert.True(t, view.WalletConnected)
	assert.False(t, view.Wallet.ConnectRequested)
	require.NotNil(t, view.Balance)
	assert.Equal(t, []string{ActionIssue}, view.Actions)

	id := view.ID
	require.Eventually(t, func() bool {
		v, err := h.registry.IssuanceView(id)
		return err == nil && v.Wallet.PendingSignature != ""
	}, time.Second, time.Millisecond)

	view, err = h.registry.IssuanceView(id)
	require.NoError(t, err)
	assert.Contains(t, view.Wallet.PendingSignature, testWallet)

	// Declining the signature never blocks issuance.
	view, err = h.registry.SubmitSignature(id, "")
	require.NoError(t, err)
	assert.Empty(t, view.Wallet.PendingSignature)
	assert.Equal(t, []string{ActionIssue}, view.Actions)

	require.NoError(t, h.registry.Teardown(id, FlowIssuance))
	assert.Equal(t, 0, h.registry.Len())
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.ActiveFlows.WithLabelValues(FlowIssuance)))

	_, err = h.registry.IssuanceView(id)
	requireFlowError(t, err, "FLOW_001")

	h.registry.Stop()
}

func TestFlowRegistry_ReportInvalidAddress(t *testing.T) {
	h := newRegistryHarness(t)
	view := h.mountIssuance(t, false)
	defer h.registry.Stop()

	_, err := h.registry.ReportWalletAddress(view.ID, "not-an-address")
	assert.ErrorIs(t, err, wallet.ErrInvalidAddress)

	_, err = h.registry.SubmitSignature(view.ID, "0xdead")
	assert.ErrorIs(t, err, wallet.ErrNoPendingSignature)
}

func TestFlowRegistry_UnknownSessionAndKind(t *testing.T) {
	h := newRegistryHarness(t)
	view := h.mountIssuance(t, false)
	defer h.registry.Stop()

	_, err := h.registry.IssuanceView("missing")
	requireFlowError(t, err, "FLOW_001")

	_, err = h.registry.VerificationView(view.ID)
	requireFlowError(t, err, "FLOW_001")

	err = h.registry.Teardown(view.ID, FlowVerification)
	requireFlowError(t, err, "FLOW_001")
	assert.Equal(t, 1, h.registry.Len())
}

func TestFlowRegistry_UnknownAction(t *testing.T) {
	h := newRegistryHarness(t)
	view := h.mountIssuance(t, false)
	defer h.registry.Stop()

	_, err := h.registry.RunIssuance(context.Background(), view.ID, "teleport")
	requireFlowError(t, err, "FLOW_002")
}

func TestFlowRegistry_RejectsConcurrentAction(t *testing.T) {
	h := newRegistryHarness(t)
	view := h.mountIssuance(t, false)
	defer h.registry.Stop()

	h.registry.sessions[view.ID].busy.Store(true)
	_, err := h.registry.RunIssuance(context.Background(), view.ID, ActionLogin)
	requireFlowError(t, err, "FLOW_003")

	// Reading the view is always allowed.
	_, err = h.registry.IssuanceView(view.ID)
	require.NoError(t, err)

	h.registry.sessions[view.ID].busy.Store(false)
	session := h.registry.sessions[view.ID].issuance.deps.Identity.(*identityLease).IdentitySession.(*mocks.MockIdentitySession)
	session.EXPECT().Login(gomock.Any()).Return(nil)
	v, err := h.registry.RunIssuance(context.Background(), view.ID, ActionLogin)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Step)
}

func TestFlowRegistry_VerificationRedirect(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	h := newRegistryHarness(t)
	ctx := context.Background()

	identity := h.session(true)
	h.provider.EXPECT().Acquire().Return(identity)
	h.provider.EXPECT().Initialized().Return(true)

	view := h.registry.MountVerification(domain.VerifierParams{SuccessURL: "/welcome"}, "")
	defer h.registry.Stop()
	assert.Equal(t, domain.VerificationReady, view.Status)
	assert.Nil(t, view.Redirect)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.ActiveFlows.WithLabelValues(FlowVerification)))

	h.tokens.EXPECT().Sign(gomock.Any(), domain.ScopeVerify).Return("tok", nil)
	identity.EXPECT().VerifyCredential(gomock.Any(), gomock.Any()).
		Return(&ports.VerificationResult{Status: domain.CompliantStatus}, nil)

	view, err := h.registry.RunVerification(ctx, view.ID, ActionVerify)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationSuccess, view.Status)
	require.NotNil(t, view.Countdown)
	assert.Equal(t, 3, *view.Countdown)

	ticker := h.clock.last(t)
	for i := 0; i < 3; i++ {
		ticker.ch <- time.Now()
	}

	id := view.ID
	require.Eventually(t, func() bool {
		v, err := h.registry.VerificationView(id)
		return err == nil && v.Redirect != nil
	}, time.Second, time.Millisecond)

	view, err = h.registry.VerificationView(id)
	require.NoError(t, err)
	assert.Equal(t, domain.Redirect{URL: "/welcome", External: false}, *view.Redirect)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Redirects.WithLabelValues("in_app")))

	_, err = h.registry.RunVerification(ctx, id, "launch")
	requireFlowError(t, err, "FLOW_002")
}

func TestFlowRegistry_ReapIdleSessions(t *testing.T) {
	h := newRegistryHarness(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.registry.now = func() time.Time { return start }

	stale := h.mountIssuance(t, false)

	h.registry.now = func() time.Time { return start.Add(20 * time.Minute) }
	fresh := h.mountIssuance(t, false)

	h.registry.now = func() time.Time { return start.Add(31 * time.Minute) }
	assert.Equal(t, 1, h.registry.Reap())
	assert.Equal(t, 1, h.registry.Len())

	_, err := h.registry.IssuanceView(stale.ID)
	requireFlowError(t, err, "FLOW_001")

	// Viewing keeps a session alive.
	h.registry.now = func() time.Time { return start.Add(45 * time.Minute) }
	_, err = h.registry.IssuanceView(fresh.ID)
	require.NoError(t, err)
	h.registry.now = func() time.Time { return start.Add(70 * time.Minute) }
	assert.Equal(t, 0, h.registry.Reap())

	h.registry.Stop()
	assert.Equal(t, 0, h.registry.Len())
}

func TestFlowRegistry_JanitorStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	h := newRegistryHarness(t)

	h.registry.Start(context.Background(), time.Millisecond)
	h.registry.Stop()
	h.registry.Stop()
}

func TestFlowRegistry_IdentitySessionCarriesAcrossMounts(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	h := newRegistryHarness(t)
	ctx := context.Background()

	loggedIn := false
	identity := mocks.NewMockIdentitySession(h.ctrl)
	identity.EXPECT().IsLoggedIn().DoAndReturn(func() bool { return loggedIn }).AnyTimes()
	identity.EXPECT().Subscribe(gomock.Any()).Return(func() {}).AnyTimes()
	identity.EXPECT().Login(gomock.Any()).DoAndReturn(func(context.Context) error {
		loggedIn = true
		return nil
	})
	identity.EXPECT().Close().Times(1)
	h.provider.EXPECT().Acquire().Return(identity).Times(1)
	h.provider.EXPECT().Initialized().Return(true)

	verification := h.registry.MountVerification(domain.VerifierParams{}, "")
	require.NotEmpty(t, verification.IdentitySession)

	h.tokens.EXPECT().Sign(gomock.Any(), domain.ScopeVerify).Return("tok", nil)
	identity.EXPECT().VerifyCredential(gomock.Any(), gomock.Any()).
		Return(&ports.VerificationResult{Status: domain.CompliantStatus}, nil)
	_, err := h.registry.RunVerification(ctx, verification.ID, ActionVerify)
	require.NoError(t, err)
	require.NoError(t, h.registry.Teardown(verification.ID, FlowVerification))

	// The login made during verification carries over to issuance.
	h.provider.EXPECT().Init(gomock.Any()).Return(nil)
	issuance, err := h.registry.MountIssuance(ctx, verification.IdentitySession)
	require.NoError(t, err)
	assert.Equal(t, verification.IdentitySession, issuance.IdentitySession)
	assert.Equal(t, 2, issuance.Step)
	assert.True(t, issuance.LoggedIn)

	h.registry.Stop()
}

func TestFlowRegistry_UnknownIdentityHandleGetsFreshSession(t *testing.T) {
	h := newRegistryHarness(t)
	defer h.registry.Stop()

	h.provider.EXPECT().Init(gomock.Any()).Return(nil)
	h.provider.EXPECT().Acquire().Return(h.session(false))
	view, err := h.registry.MountIssuance(context.Background(), "6f1d0b7e-1111-4a2b-8c3d-000000000000")
	require.NoError(t, err)

	assert.NotEqual(t, "6f1d0b7e-1111-4a2b-8c3d-000000000000", view.IdentitySession)
	assert.Equal(t, 1, view.Step)
}

func TestFlowRegistry_ReapsReleasedIdentitySessions(t *testing.T) {
	h := newRegistryHarness(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.registry.now = func() time.Time { return start }

	first := h.mountIssuance(t, true)
	require.NoError(t, h.registry.Teardown(first.ID, FlowIssuance))

	// Held by no flow but still within the ttl: reusable.
	h.registry.now = func() time.Time { return start.Add(10 * time.Minute) }
	assert.Equal(t, 0, h.registry.Reap())
	h.provider.EXPECT().Init(gomock.Any()).Return(nil)
	second, err := h.registry.MountIssuance(context.Background(), first.IdentitySession)
	require.NoError(t, err)
	assert.Equal(t, first.IdentitySession, second.IdentitySession)
	require.NoError(t, h.registry.Teardown(second.ID, FlowIssuance))

	h.registry.now = func() time.Time { return start.Add(41 * time.Minute) }
	h.registry.Reap()
	assert.Empty(t, h.registry.identities)

	third := h.mountIssuance(t, false)
	assert.NotEqual(t, first.IdentitySession, third.IdentitySession)
	assert.Equal(t, 1, third.Step)

	h.registry.Stop()
}
