package service

import (
	"context"
	"fmt"
	"time"

	"oyunfor-gateway/internal/adapter/metrics"
	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	nativeDecimals  = 18
	defaultDecimals = 18
	unknownSymbol   = "UNKNOWN"
	nativeSymbol    = "ETH"

	metadataConcurrency = 8
)

type balanceService struct {
	oracle  ports.BalanceOracle
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewBalanceService creates a balance service over oracle.
func NewBalanceService(oracle ports.BalanceOracle, m *metrics.Metrics, log zerolog.Logger) ports.BalanceService {
	return &balanceService{oracle: oracle, metrics: m, log: log}
}

// Snapshot values the wallet at address: the native balance, then every
// non-zero ERC-20 balance with its metadata and price, then the native price.
func (s *balanceService) Snapshot(ctx context.Context, address string) (*domain.BalanceSnapshot, error) {
	defer s.metrics.ObserveBalanceFetch(time.Now())

	wei, err := s.oracle.GetNativeBalance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("native balance: %w", err)
	}

	balances, err := s.oracle.GetTokenBalances(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("token balances: %w", err)
	}

	nonZero := make([]ports.TokenBalance, 0, len(balances))
	for _, b := range balances {
		if b.Raw != nil && b.Raw.Sign() > 0 {
			nonZero = append(nonZero, b)
		}
	}

	holdings := make([]domain.TokenHolding, len(nonZero))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(metadataConcurrency)
	for i, b := range nonZero {
		g.Go(func() error {
			md, err := s.oracle.GetTokenMetadata(gctx, b.Contract)
			if err != nil {
				return fmt.Errorf("token metadata %s: %w", b.Contract, err)
			}
			holdings[i] = holdingOf(b, md)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	price, err := s.oracle.GetSpotPrice(ctx, nativeSymbol)
	if err != nil {
		return nil, fmt.Errorf("%s price: %w", nativeSymbol, err)
	}

	native := decimal.NewFromBigInt(wei, -nativeDecimals)
	snap := domain.NewBalanceSnapshot(address, native, price, holdings)

	s.log.Debug().
		Str("address", domain.FormatAddress(address)).
		Str("total_usd", snap.TotalUSD.StringFixed(2)).
		Int("tokens", len(snap.Tokens)).
		Msg("balance snapshot")
	return snap, nil
}

func holdingOf(b ports.TokenBalance, md *ports.TokenMetadata) domain.TokenHolding {
	decimals := defaultDecimals
	symbol := unknownSymbol
	if md != nil {
		if md.Decimals != nil && *md.Decimals > 0 {
			decimals = *md.Decimals
		}
		if md.Symbol != nil && *md.Symbol != "" {
			symbol = *md.Symbol
		}
	}

	amount := decimal.NewFromBigInt(b.Raw, -int32(decimals))
	return domain.TokenHolding{
		Contract: b.Contract,
		Symbol:   symbol,
		Amount:   amount,
		USDValue: amount.Mul(domain.TokenPriceUSD(b.Contract)),
	}
}
