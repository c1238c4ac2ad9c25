package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted record of a wallet that went through credential issuance.
type User struct {
	ID                 uuid.UUID  `json:"id"`
	WalletAddress      string     `json:"wallet_address"`
	IdentityID         string     `json:"identity_id"`
	IdentityEmail      string     `json:"identity_email"`
	IsCredentialIssued bool       `json:"is_credential_issued"`
	CredentialSubject  *string    `json:"credential_subject,omitempty"` // serialized CredentialSubject
	IsVerified         bool       `json:"is_verified"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// UserStatus summarizes what the gateway knows about an identity user.
type UserStatus struct {
	Exists        bool  `json:"exists"`
	HasCredential bool  `json:"has_credential"`
	IsVerified    bool  `json:"is_verified"`
	User          *User `json:"user"`
}

// StatusOf projects a possibly missing user into a UserStatus.
func StatusOf(u *User) UserStatus {
	if u == nil {
		return UserStatus{}
	}
	return UserStatus{
		Exists:        true,
		HasCredential: u.IsCredentialIssued,
		IsVerified:    u.IsVerified,
		User:          u,
	}
}
