package service

import (
	"context"
	"sync"
	"time"

	"oyunfor-gateway/internal/adapter/metrics"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	msgInitializing      = "Initializing verification system..."
	msgReady             = "Click below to verify your credentials"
	msgOpeningLogin      = "Opening AIR Kit authentication..."
	msgFetchingToken     = "Fetching authorization token..."
	msgVerifying         = "Verifying your credentials with zero-knowledge proof..."
	msgVerified          = "Verification successful!"
	msgNoCredential      = "No valid credentials found. You need to get verified first."
	msgVerificationError = "Verification process was cancelled or failed"

	successCountdown = 3
	failureCountdown = 5
)

// Verification flow actions, as listed in VerificationView.Actions.
const (
	ActionVerify = "verify"
	ActionRetry  = "retry"
)

// Ticker is the part of time.Ticker the countdown uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds the countdown ticker.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// NewTimeTicker is the production TickerFactory.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// VerificationDeps are the collaborators of one verification flow.
type VerificationDeps struct {
	Provider  ports.IdentityProvider
	Identity  ports.IdentitySession
	Tokens    ports.PartnerTokenService
	Navigator ports.Navigator
	NewTicker TickerFactory
	Metrics   *metrics.Metrics
	Log       zerolog.Logger
}

// VerificationSettings are the partner-wide verification parameters.
type VerificationSettings struct {
	ProgramID   string
	RedirectURL string // where the identity service sends users without a credential
}

// VerificationView is the projection of a verification flow shown to the browser.
type VerificationView struct {
	Status          domain.VerificationStatus `json:"status"`
	Message         string                    `json:"message"`
	Countdown       *int                      `json:"countdown"`
	Params          domain.VerifierParams     `json:"params"`
	RequiredBalance int                       `json:"required_balance"`
	Actions         []string                  `json:"actions"`
}

// VerificationController decides whether the user's credential satisfies
// the partner rule and then redirects after a countdown.
type VerificationController struct {
	deps     VerificationDeps
	settings VerificationSettings
	params   domain.VerifierParams

	ctx    context.Context // cancelled on Close
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	status     domain.VerificationStatus
	message    string
	countdown  *int
	stopTimer  chan struct{}
	redirected bool
	closed     bool
}

// NewVerificationController mounts a verification flow. It becomes Ready as
// soon as the identity provider reports itself initialized, starting the
// provider's initialization if nobody has yet.
func NewVerificationController(deps VerificationDeps, settings VerificationSettings, params domain.VerifierParams) *VerificationController {
	if deps.NewTicker == nil {
		deps.NewTicker = NewTimeTicker
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &VerificationController{
		deps:     deps,
		settings: settings,
		params:   params.WithDefaults(),
		ctx:      ctx,
		cancel:   cancel,
		status:   domain.VerificationInitializing,
		message:  msgInitializing,
	}

	if deps.Provider.Initialized() {
		c.markReady()
		return c
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := deps.Provider.Init(ctx); err != nil {
			c.deps.Log.Warn().Err(err).Msg("identity provider init reported an error")
		}
		if deps.Provider.Initialized() {
			c.markReady()
		}
	}()
	return c
}

// Verify runs login (if needed), token fetch and credential verification,
// then starts the redirect countdown. Collaborator failures end in Failed.
func (c *VerificationController) Verify(ctx context.Context) error {
	c.mu.Lock()
	if c.closed || c.status != domain.VerificationReady {
		status := c.status
		c.mu.Unlock()
		return apperror.ErrTransitionNotAllowed(ActionVerify, string(status))
	}
	c.status = domain.VerificationVerifying
	c.message = msgOpeningLogin
	c.mu.Unlock()

	compliant, err := c.verify(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}

	switch {
	case err != nil:
		c.deps.Log.Warn().Err(err).Str("partner_id", c.params.PartnerID).Msg("verification failed")
		c.deps.Metrics.IncVerification("error")
		c.status = domain.VerificationFailed
		c.message = userMessage(err, msgVerificationError)
		c.startCountdownLocked(failureCountdown)
	case compliant:
		c.deps.Metrics.IncVerification("compliant")
		c.status = domain.VerificationSuccess
		c.message = msgVerified
		c.startCountdownLocked(successCountdown)
	default:
		c.deps.Metrics.IncVerification("non_compliant")
		c.status = domain.VerificationFailed
		c.message = msgNoCredential
		c.startCountdownLocked(failureCountdown)
	}
	return nil
}

func (c *VerificationController) verify(ctx context.Context) (bool, error) {
	if !c.deps.Identity.IsLoggedIn() {
		if err := c.deps.Identity.Login(ctx); err != nil {
			return false, err
		}
	}

	c.setMessage(msgFetchingToken)
	token, err := c.deps.Tokens.Sign(ctx, domain.ScopeVerify)
	if err != nil {
		return false, err
	}

	c.setMessage(msgVerifying)
	result, err := c.deps.Identity.VerifyCredential(ctx, ports.VerifyCredentialParams{
		AuthToken:   token,
		ProgramID:   c.settings.ProgramID,
		RedirectURL: c.settings.RedirectURL,
	})
	if err != nil {
		return false, err
	}
	return result != nil && result.Status == domain.CompliantStatus, nil
}

// Retry moves a Failed flow back to Ready and cancels its countdown.
func (c *VerificationController) Retry(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.status != domain.VerificationFailed || c.redirected {
		return apperror.ErrTransitionNotAllowed(ActionRetry, string(c.status))
	}

	c.stopCountdownLocked()
	c.countdown = nil
	c.status = domain.VerificationReady
	c.message = msgReady
	return nil
}

// View returns the current projection of the flow.
func (c *VerificationController) View() VerificationView {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := VerificationView{
		Status:          c.status,
		Message:         c.message,
		Params:          c.params,
		RequiredBalance: c.params.RequiredBalance(),
		Actions:         []string{},
	}
	if c.countdown != nil {
		n := *c.countdown
		v.Countdown = &n
	}
	switch {
	case c.status == domain.VerificationReady:
		v.Actions = []string{ActionVerify}
	case c.status == domain.VerificationFailed && !c.redirected:
		v.Actions = []string{ActionRetry}
	}
	return v
}

// Close stops the countdown so no redirect fires after teardown, and
// releases the identity session. Safe to call twice.
func (c *VerificationController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopCountdownLocked()
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
	c.deps.Identity.Close()
}

func (c *VerificationController) markReady() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.status != domain.VerificationInitializing {
		return
	}
	c.status = domain.VerificationReady
	c.message = msgReady
}

func (c *VerificationController) setMessage(msg string) {
	c.mu.Lock()
	c.message = msg
	c.mu.Unlock()
}

func (c *VerificationController) startCountdownLocked(seconds int) {
	c.stopCountdownLocked()
	n := seconds
	c.countdown = &n
	stop := make(chan struct{})
	c.stopTimer = stop

	ticker := c.deps.NewTicker(time.Second)
	c.wg.Add(1)
	go c.runCountdown(ticker, stop)
}

func (c *VerificationController) stopCountdownLocked() {
	if c.stopTimer != nil {
		close(c.stopTimer)
		c.stopTimer = nil
	}
}

// runCountdown decrements the countdown once per tick and navigates at zero.
func (c *VerificationController) runCountdown(ticker Ticker, stop <-chan struct{}) {
	defer c.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
		}

		c.mu.Lock()
		select {
		case <-stop:
			c.mu.Unlock()
			return
		default:
		}
		*c.countdown--
		if *c.countdown > 0 {
			c.mu.Unlock()
			continue
		}

		target := c.params.FailURL
		if c.status == domain.VerificationSuccess {
			target = c.params.SuccessURL
		}
		redirect := domain.NewRedirect(target)
		c.redirected = true
		c.stopTimer = nil
		c.mu.Unlock()

		c.deps.Navigator.Navigate(redirect)
		c.deps.Metrics.IncRedirect(redirect.External)
		c.deps.Log.Info().Str("url", redirect.URL).Bool("external", redirect.External).Msg("verification redirect")
		return
	}
}
