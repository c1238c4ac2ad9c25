package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidAddress reports whether s is a 0x-prefixed 20 byte hex address.
func IsValidAddress(s string) bool {
	return len(s) == 42 && common.IsHexAddress(s)
}

// FormatAddress shortens an address to 0x1234...abcd, or "Unknown" when invalid.
func FormatAddress(s string) string {
	if !IsValidAddress(s) {
		return "Unknown"
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// WalletOwnershipMessage is the text a wallet signs to attest ownership.
func WalletOwnershipMessage(address, siteName string) string {
	return fmt.Sprintf(
		"I hereby confirm that I own the following wallet address: %s and I give %s permission to use my balance for verification purposes.",
		address, siteName,
	)
}
