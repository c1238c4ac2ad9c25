package dto

import (
	"time"

	"oyunfor-gateway/internal/core/domain"
)

// AuthTokenResponse carries a signed partner authorization token.
type AuthTokenResponse struct {
	AuthToken string `json:"authToken"`
}

// VerifierParamsQuery is the query string of the verifier link and the
// verification flow mount. Empty fields take their defaults.
type VerifierParamsQuery struct {
	PartnerID  string `form:"partnerId" binding:"omitempty,max=64,safe_id"`
	Rule       string `form:"rule" binding:"omitempty,max=128,safe_id"`
	SuccessURL string `form:"successUrl" binding:"omitempty,max=2048,redirect_target"`
	FailURL    string `form:"failUrl" binding:"omitempty,max=2048,redirect_target"`
}

// FlowMountQuery carries the identity session handle returned by an earlier
// flow, so a new flow starts with that flow's login state.
type FlowMountQuery struct {
	IdentitySession string `form:"identitySession" binding:"omitempty,uuid"`
}

// VerifierURLResponse is the response for the verifier link builder.
type VerifierURLResponse struct {
	URL string `json:"url"`
}

// WalletAddressRequest is the wallet bridge's address report. An empty
// address means the wallet disconnected.
type WalletAddressRequest struct {
	Address string `json:"address" binding:"omitempty,eth_addr"`
}

// WalletSignatureRequest answers a pending signature request. An empty
// signature means the user declined.
type WalletSignatureRequest struct {
	Signature string `json:"signature" binding:"omitempty,hexadecimal"`
}

// CreateAdSubmissionRequest is the request body of the ad submission form.
type CreateAdSubmissionRequest struct {
	AdName            string    `json:"ad_name" binding:"max=200"`
	AdDescription     string    `json:"ad_description" binding:"max=5000"`
	MaximumIssuance   int       `json:"maximum_issuance"`
	AccessibleFrom    time.Time `json:"accessible_from" binding:"required"`
	AccessibleUntil   time.Time `json:"accessible_until" binding:"required"`
	ContactEmail      string    `json:"contact_email" binding:"omitempty,email,max=254"`
	ContactPersonName string    `json:"contact_person_name" binding:"max=100"`
}

// UpdateAdStatusRequest is the request body for an ad status change.
type UpdateAdStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateVerificationRequest is the request body for a user verification change.
type UpdateVerificationRequest struct {
	IsVerified *bool `json:"isVerified" binding:"required"`
}

// AdSubmissionListResponse wraps the submission list.
type AdSubmissionListResponse struct {
	Items []AdSubmissionResponse `json:"items"`
	Total int                    `json:"total"`
}

// AdSubmissionResponse is one ad submission as shown to staff.
type AdSubmissionResponse struct {
	ID                string  `json:"id"`
	AdName            string  `json:"ad_name"`
	AdDescription     string  `json:"ad_description"`
	MaximumIssuance   int     `json:"maximum_issuance"`
	AccessibleFrom    string  `json:"accessible_from"`
	AccessibleUntil   string  `json:"accessible_until"`
	ContactEmail      string  `json:"contact_email"`
	ContactPersonName string  `json:"contact_person_name"`
	Status            string  `json:"status"`
	CreatedBy         *string `json:"created_by,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// Params converts the query into verifier parameters. Defaults are applied
// by the consumer.
func (q VerifierParamsQuery) Params() domain.VerifierParams {
	return domain.VerifierParams{
		PartnerID:  q.PartnerID,
		Rule:       q.Rule,
		SuccessURL: q.SuccessURL,
		FailURL:    q.FailURL,
	}
}
