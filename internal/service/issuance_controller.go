package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"oyunfor-gateway/internal/adapter/metrics"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	msgLoginFailed      = "AIR login failed"
	msgWalletFailed     = "Wallet connection failed"
	msgNotReadyToIssue  = "Wallet not connected or balance not loaded"
	msgIssuanceFailed   = "Credential issuance failed"
	msgBalanceFetchFail = "Failed to fetch wallet balance. Please try again."
)

// Issuance flow actions, as listed in IssuanceView.Actions.
const (
	ActionLogin            = "login"
	ActionConnectWallet    = "connect_wallet"
	ActionRefreshBalance   = "refresh_balance"
	ActionIssue            = "issue"
	ActionDisconnectWallet = "disconnect_wallet"
	ActionSwitchWallet     = "switch_wallet"
)

// IssuanceDeps are the collaborators of one issuance flow.
type IssuanceDeps struct {
	Identity ports.IdentitySession
	Wallet   ports.WalletClient
	Balances ports.BalanceService
	Tokens   ports.PartnerTokenService
	Users    ports.UserService
	Metrics  *metrics.Metrics
	Log      zerolog.Logger
}

// IssuanceSettings are the partner-wide issuance parameters.
type IssuanceSettings struct {
	PartnerID    string
	IssuerDID    string
	CredentialID string
	SiteName     string
}

// IssuanceView is the projection of an issuance flow shown to the browser.
type IssuanceView struct {
	Step            int                     `json:"step"`
	StepName        string                  `json:"step_name"`
	Error           string                  `json:"error,omitempty"`
	LoggedIn        bool                    `json:"logged_in"`
	WalletConnected bool                    `json:"wallet_connected"`
	WalletAddress   string                  `json:"wallet_address,omitempty"`
	WalletDisplay   string                  `json:"wallet_display,omitempty"`
	LoadingBalance  bool                    `json:"loading_balance"`
	Issuing         bool                    `json:"issuing"`
	Balance         *domain.BalanceSnapshot `json:"balance,omitempty"`
	NoAssets        bool                    `json:"no_assets"`
	Actions         []string                `json:"actions"`
}

// IssuanceController drives a user through login, wallet connection and
// credential issuance. Actions are not safe to run concurrently with each
// other; View may be called at any time.
type IssuanceController struct {
	deps     IssuanceDeps
	settings IssuanceSettings
	now      func() time.Time

	ctx    context.Context // cancelled on Close
	cancel context.CancelFunc

	mu             sync.Mutex
	step           domain.WizardStep
	errMsg         string
	loggedIn       bool
	loadingBalance bool
	issuing        bool
	balance        *domain.BalanceSnapshot
	releases       []func()
	closed         bool
}

// NewIssuanceController mounts an issuance flow. A session that is already
// logged in starts at StepAwaitingWallet.
func NewIssuanceController(deps IssuanceDeps, settings IssuanceSettings) *IssuanceController {
	ctx, cancel := context.WithCancel(context.Background())
	c := &IssuanceController{
		deps:     deps,
		settings: settings,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		step:     domain.StepAwaitingLogin,
	}

	c.loggedIn = deps.Identity.IsLoggedIn()
	if c.loggedIn {
		c.step = domain.StepAwaitingWallet
	}

	c.releases = append(c.releases,
		deps.Identity.Subscribe(c.onIdentityEvent),
		deps.Wallet.OnAddressChange(c.onAddressChange),
	)
	return c
}

// Login runs the identity login for StepAwaitingLogin.
func (c *IssuanceController) Login(ctx context.Context) error {
	if err := c.require(ActionLogin, domain.StepAwaitingLogin); err != nil {
		return err
	}

	if err := c.deps.Identity.Login(ctx); err != nil {
		c.fail(userMessage(err, msgLoginFailed))
		return nil
	}

	c.mu.Lock()
	c.step = domain.StepAwaitingWallet
	c.loggedIn = true
	c.mu.Unlock()
	return nil
}

// ConnectWallet opens the wallet connect UI and advances to
// StepAwaitingIssuance without waiting for the connection. The step's
// entry guard only proceeds once a wallet is connected.
func (c *IssuanceController) ConnectWallet(ctx context.Context) error {
	if err := c.require(ActionConnectWallet, domain.StepAwaitingWallet); err != nil {
		return err
	}

	if err := c.deps.Wallet.Connect(ctx); err != nil {
		c.fail(userMessage(err, msgWalletFailed))
		return nil
	}

	c.mu.Lock()
	c.step = domain.StepAwaitingIssuance
	c.mu.Unlock()

	c.enterIssuanceStep(ctx)
	return nil
}

// RefreshBalance refetches the balance snapshot of the connected wallet.
func (c *IssuanceController) RefreshBalance(ctx context.Context) error {
	if err := c.require(ActionRefreshBalance, domain.StepAwaitingIssuance); err != nil {
		return err
	}
	address := c.deps.Wallet.Address()
	if address == "" {
		return apperror.ErrTransitionNotAllowed(ActionRefreshBalance, "wallet_disconnected")
	}

	c.fetchBalance(ctx, address)
	return nil
}

// Issue signs an issue-scoped token and asks the identity service to issue
// the credential. Persisting the user afterwards is best-effort.
func (c *IssuanceController) Issue(ctx context.Context) error {
	if err := c.require(ActionIssue, domain.StepAwaitingIssuance); err != nil {
		return err
	}

	address := c.deps.Wallet.Address()
	c.mu.Lock()
	snap := c.balance
	c.mu.Unlock()

	if address == "" || snap == nil || !strings.EqualFold(snap.Address, address) {
		c.fail(msgNotReadyToIssue)
		return nil
	}
	if !snap.HasAssets() {
		return apperror.ErrTransitionNotAllowed(ActionIssue, "no_assets")
	}

	c.mu.Lock()
	c.errMsg = ""
	c.issuing = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.issuing = false
		c.mu.Unlock()
	}()

	token, err := c.deps.Tokens.Sign(ctx, domain.ScopeIssue)
	if err != nil {
		c.deps.Metrics.IncIssuance("failed")
		c.fail(userMessage(err, msgIssuanceFailed))
		return nil
	}

	subject := domain.NewCredentialSubject(c.settings.PartnerID, snap, c.now())
	err = c.deps.Identity.IssueCredential(ctx, ports.IssueCredentialParams{
		AuthToken:         token,
		IssuerDID:         c.settings.IssuerDID,
		CredentialID:      c.settings.CredentialID,
		CredentialSubject: subject,
	})
	if err != nil {
		c.deps.Metrics.IncIssuance("failed")
		c.fail(userMessage(err, msgIssuanceFailed))
		return nil
	}

	c.persistUser(ctx, address, subject)

	c.mu.Lock()
	c.step = domain.StepIssued
	c.mu.Unlock()

	c.deps.Metrics.IncIssuance("issued")
	c.deps.Log.Info().Str("wallet", domain.FormatAddress(address)).Msg("credential issued")
	return nil
}

// DisconnectWallet drops the wallet and returns to StepAwaitingWallet.
func (c *IssuanceController) DisconnectWallet(ctx context.Context) error {
	if err := c.require(ActionDisconnectWallet, domain.StepAwaitingIssuance); err != nil {
		return err
	}
	c.resetToWalletStep(ctx)
	return nil
}

// SwitchWallet drops the wallet, returns to StepAwaitingWallet and opens the
// connect UI for another account.
func (c *IssuanceController) SwitchWallet(ctx context.Context) error {
	if err := c.require(ActionSwitchWallet, domain.StepAwaitingIssuance); err != nil {
		return err
	}
	c.resetToWalletStep(ctx)

	if err := c.deps.Wallet.Connect(ctx); err != nil {
		c.fail(userMessage(err, msgWalletFailed))
	}
	return nil
}

// View returns the current projection of the flow.
func (c *IssuanceController) View() IssuanceView {
	address := c.deps.Wallet.Address()

	c.mu.Lock()
	defer c.mu.Unlock()

	v := IssuanceView{
		Step:            int(c.step),
		StepName:        c.step.String(),
		Error:           c.errMsg,
		LoggedIn:        c.loggedIn,
		WalletConnected: address != "",
		WalletAddress:   address,
		LoadingBalance:  c.loadingBalance,
		Issuing:         c.issuing,
		Balance:         c.balance,
		NoAssets:        c.balance != nil && !c.balance.HasAssets(),
	}
	if address != "" {
		v.WalletDisplay = domain.FormatAddress(address)
	}
	v.Actions = c.actionsLocked(address)
	return v
}

// Close tears the flow down: it cancels the pending ownership signature and
// releases every subscription and the identity session. Safe to call twice.
func (c *IssuanceController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	releases := c.releases
	c.releases = nil
	c.mu.Unlock()

	c.cancel()
	for _, release := range releases {
		release()
	}
	c.deps.Identity.Close()
}

func (c *IssuanceController) actionsLocked(address string) []string {
	switch c.step {
	case domain.StepAwaitingLogin:
		return []string{ActionLogin}
	case domain.StepAwaitingWallet:
		return []string{ActionConnectWallet}
	case domain.StepAwaitingIssuance:
		switch {
		case address == "" || c.loadingBalance || c.issuing:
			return []string{}
		case c.balance == nil:
			return []string{ActionRefreshBalance}
		case !c.balance.HasAssets():
			return []string{ActionDisconnectWallet, ActionSwitchWallet}
		default:
			return []string{ActionIssue}
		}
	}
	return []string{}
}

// require checks the current step and clears the previous error.
func (c *IssuanceController) require(action string, step domain.WizardStep) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.step != step {
		return apperror.ErrTransitionNotAllowed(action, c.step.String())
	}
	c.errMsg = ""
	return nil
}

func (c *IssuanceController) fail(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}

// enterIssuanceStep is the StepAwaitingIssuance entry guard: nothing happens
// until a wallet is connected.
func (c *IssuanceController) enterIssuanceStep(ctx context.Context) {
	address := c.deps.Wallet.Address()
	if address == "" {
		return
	}
	c.fetchBalance(ctx, address)
	c.requestOwnershipSignature(address)
}

func (c *IssuanceController) fetchBalance(ctx context.Context, address string) {
	c.mu.Lock()
	c.loadingBalance = true
	c.errMsg = ""
	c.balance = nil
	c.mu.Unlock()

	snap, err := c.deps.Balances.Snapshot(ctx, address)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadingBalance = false
	if err != nil {
		c.deps.Log.Error().Err(err).Str("wallet", domain.FormatAddress(address)).Msg("error fetching wallet balance")
		c.errMsg = msgBalanceFetchFail
		return
	}
	c.balance = snap
}

// requestOwnershipSignature asks the wallet to sign the ownership message.
// The result is only logged and never gates issuance.
func (c *IssuanceController) requestOwnershipSignature(address string) {
	message := domain.WalletOwnershipMessage(address, c.settings.SiteName)
	log := c.deps.Log.With().Str("wallet", domain.FormatAddress(address)).Logger()
	spawn(log, "ownership_signature", func() error {
		sig, err := c.deps.Wallet.SignMessage(c.ctx, message)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		log.Info().Int("signature_len", len(sig)).Msg("wallet ownership signed")
		return nil
	})
}

func (c *IssuanceController) persistUser(ctx context.Context, address string, subject domain.CredentialSubject) {
	if !c.deps.Identity.IsLoggedIn() {
		return
	}
	user, err := c.deps.Identity.GetUserInfo(ctx)
	if err != nil {
		c.deps.Log.Warn().Err(err).Msg("fetching identity user after issuance failed")
		return
	}
	serialized, err := subject.Serialize()
	if err != nil {
		c.deps.Log.Warn().Err(err).Msg("serializing credential subject failed")
		return
	}

	_, isNew, err := c.deps.Users.CreateOrUpdate(ctx, ports.CreateUserInput{
		WalletAddress:      address,
		IdentityID:         user.ID,
		IdentityEmail:      user.Email,
		IsCredentialIssued: true,
		CredentialSubject:  serialized,
	})
	if err != nil {
		c.deps.Log.Warn().Err(err).Str("identity_id", user.ID).Msg("persisting issued user failed")
		return
	}
	c.deps.Log.Info().Str("identity_id", user.ID).Bool("new_user", isNew).Msg("issued user saved")
}

func (c *IssuanceController) resetToWalletStep(ctx context.Context) {
	if err := c.deps.Wallet.Disconnect(ctx); err != nil {
		c.deps.Log.Warn().Err(err).Msg("wallet disconnect failed")
	}
	c.mu.Lock()
	c.balance = nil
	c.step = domain.StepAwaitingWallet
	c.mu.Unlock()
}

func (c *IssuanceController) onIdentityEvent(ev ports.IdentityEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch ev {
	case ports.IdentityLoggedIn:
		c.loggedIn = true
	case ports.IdentityLoggedOut:
		c.loggedIn = false
	}
}

// onAddressChange refetches the balance and re-requests the ownership
// signature when the wallet changes while on StepAwaitingIssuance.
func (c *IssuanceController) onAddressChange(address string) {
	c.mu.Lock()
	active := !c.closed && c.step == domain.StepAwaitingIssuance
	c.mu.Unlock()
	if !active || address == "" {
		return
	}
	c.fetchBalance(c.ctx, address)
	c.requestOwnershipSignature(address)
}

// userMessage is the text shown for a failed collaborator call.
func userMessage(err error, fallback string) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
