package domain

import (
	"encoding/json"
	"time"
)

// CompliantStatus is the verdict the identity service returns for a passing credential.
const CompliantStatus = "Compliant"

// balanceUSDFlag is always 1: the credential asserts the USD rule holds, not the amount.
const balanceUSDFlag = 1

// CredentialSubject is handed unmodified to the identity service for issuance.
type CredentialSubject struct {
	ID             string  `json:"id"`
	WalletAddress  string  `json:"walletAddress"`
	BalanceETH     float64 `json:"balance-eth"`
	BalanceUSDFlag int     `json:"balance-usd"`
	VerifiedAt     string  `json:"verified-at"`
}

// NewCredentialSubject builds the subject for a wallet's balance snapshot.
func NewCredentialSubject(partnerID string, snap *BalanceSnapshot, now time.Time) CredentialSubject {
	return CredentialSubject{
		ID:             partnerID + "-" + snap.Address,
		WalletAddress:  snap.Address,
		BalanceETH:     snap.NativeAmount.InexactFloat64(),
		BalanceUSDFlag: balanceUSDFlag,
		VerifiedAt:     now.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

// Serialize returns the JSON form stored alongside the user record.
func (s CredentialSubject) Serialize() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
