package domain

// WizardStep is the position of an issuance flow. Steps only move forward
// on success, except the explicit wallet actions that return to StepAwaitingWallet.
type WizardStep int

const (
	StepAwaitingLogin    WizardStep = 1
	StepAwaitingWallet   WizardStep = 2
	StepAwaitingIssuance WizardStep = 3
	StepIssued           WizardStep = 4
)

func (s WizardStep) String() string {
	switch s {
	case StepAwaitingLogin:
		return "awaiting_login"
	case StepAwaitingWallet:
		return "awaiting_wallet"
	case StepAwaitingIssuance:
		return "awaiting_issuance"
	case StepIssued:
		return "issued"
	}
	return "unknown"
}

// VerificationStatus is the state of a verification flow.
type VerificationStatus string

const (
	VerificationInitializing VerificationStatus = "initializing"
	VerificationReady        VerificationStatus = "ready"
	VerificationVerifying    VerificationStatus = "verifying"
	VerificationSuccess      VerificationStatus = "success"
	VerificationFailed       VerificationStatus = "failed"
)

// Redirect is where the browser goes once a verification countdown expires.
type Redirect struct {
	URL      string `json:"url"`
	External bool   `json:"external"`
}

// NewRedirect classifies target as external or in-app.
func NewRedirect(target string) Redirect {
	return Redirect{URL: target, External: IsExternalURL(target)}
}
