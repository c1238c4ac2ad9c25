package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TokenHolding is one non-zero ERC-20 balance inside a snapshot.
type TokenHolding struct {
	Contract string          `json:"contract"`
	Symbol   string          `json:"symbol"`
	Amount   decimal.Decimal `json:"amount"`
	USDValue decimal.Decimal `json:"usd_value"`
}

// BalanceSnapshot is the valuation of a wallet at one point in time.
// It is immutable once built; a wallet switch replaces it wholesale.
type BalanceSnapshot struct {
	Address        string          `json:"address"`
	TotalUSD       decimal.Decimal `json:"total_usd"`
	NativeAmount   decimal.Decimal `json:"native_amount"`
	NativePriceUSD decimal.Decimal `json:"native_price_usd"`
	Tokens         []TokenHolding  `json:"tokens"`
}

// NewBalanceSnapshot builds a snapshot and derives TotalUSD as
// native*price plus the sum of token USD values.
func NewBalanceSnapshot(address string, native, nativePrice decimal.Decimal, tokens []TokenHolding) *BalanceSnapshot {
	if tokens == nil {
		tokens = []TokenHolding{}
	}
	total := native.Mul(nativePrice)
	for _, t := range tokens {
		total = total.Add(t.USDValue)
	}
	return &BalanceSnapshot{
		Address:        address,
		TotalUSD:       total,
		NativeAmount:   native,
		NativePriceUSD: nativePrice,
		Tokens:         tokens,
	}
}

// HasAssets reports whether the wallet holds any native balance or any token.
func (b *BalanceSnapshot) HasAssets() bool {
	return b.NativeAmount.IsPositive() || len(b.Tokens) > 0
}

// Known stablecoin contracts on Ethereum mainnet, priced at one dollar.
const (
	USDCContract = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	USDTContract = "0xdac17f958d2ee523a2206206994597c13d831ec7"
)

// TokenPriceUSD returns the USD price used to value a token contract.
// Stablecoins are valued at 1, every other token at 0.
func TokenPriceUSD(contract string) decimal.Decimal {
	switch strings.ToLower(contract) {
	case USDCContract, USDTContract:
		return decimal.NewFromInt(1)
	}
	return decimal.Zero
}
