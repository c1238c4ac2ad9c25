package ports

import (
	"context"
	"math/big"

	"oyunfor-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks oyunfor-gateway/internal/core/ports IdentityProvider,IdentitySession,WalletClient,BalanceOracle,Navigator

// IdentityEvent is a login state change published by an identity session.
type IdentityEvent string

const (
	IdentityLoggedIn  IdentityEvent = "logged_in"
	IdentityLoggedOut IdentityEvent = "logged_out"
)

// IdentityProvider is the process-wide handle on the external identity service.
// Init is idempotent and safe for concurrent callers.
type IdentityProvider interface {
	Init(ctx context.Context) error
	Initialized() bool
	// Acquire hands out a per-flow session; callers must Close it.
	Acquire() IdentitySession
}

// IssueCredentialParams is the issuance request sent to the identity service.
type IssueCredentialParams struct {
	AuthToken         string                   `json:"authToken"`
	IssuerDID         string                   `json:"issuerDid"`
	CredentialID      string                   `json:"credentialId"`
	CredentialSubject domain.CredentialSubject `json:"credentialSubject"`
}

// VerifyCredentialParams is the verification request sent to the identity service.
type VerifyCredentialParams struct {
	AuthToken   string `json:"authToken"`
	ProgramID   string `json:"programId"`
	RedirectURL string `json:"redirectUrl"`
}

// VerificationResult is the verdict returned by the identity service.
type VerificationResult struct {
	Status string `json:"status"`
}

// IdentityUser is the logged-in profile.
type IdentityUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// IdentitySession is one flow's view of the identity service.
type IdentitySession interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	IsLoggedIn() bool
	IssueCredential(ctx context.Context, p IssueCredentialParams) error
	VerifyCredential(ctx context.Context, p VerifyCredentialParams) (*VerificationResult, error)
	GetUserInfo(ctx context.Context) (*IdentityUser, error)
	// Subscribe registers fn for login state changes and returns its release func.
	Subscribe(fn func(IdentityEvent)) func()
	Close()
}

// WalletClient is one flow's wallet connection.
type WalletClient interface {
	// Connect opens the wallet connect UI. It does not wait for the user.
	Connect(ctx context.Context) error
	Address() string
	IsConnected() bool
	SignMessage(ctx context.Context, message string) (string, error)
	Disconnect(ctx context.Context) error
	// OnAddressChange registers fn for address changes and returns its release func.
	OnAddressChange(fn func(address string)) func()
}

// TokenBalance is a raw ERC-20 balance as reported by the oracle.
type TokenBalance struct {
	Contract string
	Raw      *big.Int
}

// TokenMetadata describes an ERC-20 contract. Nil fields were not reported.
type TokenMetadata struct {
	Symbol   *string
	Decimals *int
}

// BalanceOracle reads on-chain balances and market prices.
type BalanceOracle interface {
	GetNativeBalance(ctx context.Context, address string) (*big.Int, error)
	GetTokenBalances(ctx context.Context, address string) ([]TokenBalance, error)
	GetTokenMetadata(ctx context.Context, contract string) (*TokenMetadata, error)
	GetSpotPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// Navigator performs the redirect at the end of a verification countdown.
type Navigator interface {
	Navigate(r domain.Redirect)
}

// WalletBridge is a WalletClient driven by the browser: the browser reports
// the connected address and answers signature requests.
type WalletBridge interface {
	WalletClient
	ReportAddress(address string) error
	SubmitSignature(signature string) error
	ConnectRequested() bool
	PendingMessage() (string, bool)
}
