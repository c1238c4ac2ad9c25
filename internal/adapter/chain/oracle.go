package chain

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"oyunfor-gateway/config"
	"oyunfor-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// priceIDs maps ticker symbols to the price API's asset ids.
var priceIDs = map[string]string{
	"ETH": "ethereum",
}

// Oracle implements ports.BalanceOracle over an Ethereum JSON-RPC endpoint
// that also serves the alchemy_* token extensions.
type Oracle struct {
	rpc      *rpc.Client
	http     *http.Client
	priceURL string
	priceTTL time.Duration
	cache    ports.PriceCache
	log      zerolog.Logger
}

// Dial connects to the RPC endpoint in cfg. cache may be nil.
func Dial(ctx context.Context, cfg config.BalanceConfig, cache ports.PriceCache, log zerolog.Logger) (*Oracle, error) {
	client, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing balance rpc: %w", err)
	}
	return NewOracle(client, cfg, cache, log), nil
}

// NewOracle wraps an existing RPC client.
func NewOracle(client *rpc.Client, cfg config.BalanceConfig, cache ports.PriceCache, log zerolog.Logger) *Oracle {
	return &Oracle{
		rpc:      client,
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		priceURL: cfg.PriceAPIURL,
		priceTTL: cfg.PriceTTL,
		cache:    cache,
		log:      log,
	}
}

// Close releases the RPC connection.
func (o *Oracle) Close() {
	o.rpc.Close()
}

// GetNativeBalance returns the latest wei balance of address.
func (o *Oracle) GetNativeBalance(ctx context.Context, address string) (*big.Int, error) {
	var result hexutil.Big
	if err := o.rpc.CallContext(ctx, &result, "eth_getBalance", common.HexToAddress(address), "latest"); err != nil {
		return nil, fmt.Errorf("eth_getBalance: %w", err)
	}
	return result.ToInt(), nil
}

type tokenBalancesResult struct {
	Address       string `json:"address"`
	TokenBalances []struct {
		ContractAddress string  `json:"contractAddress"`
		TokenBalance    *string `json:"tokenBalance"`
		Error           *string `json:"error"`
	} `json:"tokenBalances"`
}

// GetTokenBalances returns the raw ERC-20 balances held by address.
// Entries the node could not read are skipped.
func (o *Oracle) GetTokenBalances(ctx context.Context, address string) ([]ports.TokenBalance, error) {
	var result tokenBalancesResult
	if err := o.rpc.CallContext(ctx, &result, "alchemy_getTokenBalances", common.HexToAddress(address), "erc20"); err != nil {
		return nil, fmt.Errorf("alchemy_getTokenBalances: %w", err)
	}

	balances := make([]ports.TokenBalance, 0, len(result.TokenBalances))
	for _, tb := range result.TokenBalances {
		if tb.Error != nil || tb.TokenBalance == nil {
			continue
		}
		raw, err := parseHexQuantity(*tb.TokenBalance)
		if err != nil {
			o.log.Warn().Err(err).Str("contract", tb.ContractAddress).Msg("skipping unreadable token balance")
			continue
		}
		balances = append(balances, ports.TokenBalance{Contract: tb.ContractAddress, Raw: raw})
	}
	return balances, nil
}

type tokenMetadataResult struct {
	Symbol   *string `json:"symbol"`
	Decimals *int    `json:"decimals"`
}

// GetTokenMetadata returns the symbol and decimals of an ERC-20 contract.
func (o *Oracle) GetTokenMetadata(ctx context.Context, contract string) (*ports.TokenMetadata, error) {
	var result tokenMetadataResult
	if err := o.rpc.CallContext(ctx, &result, "alchemy_getTokenMetadata", common.HexToAddress(contract)); err != nil {
		return nil, fmt.Errorf("alchemy_getTokenMetadata: %w", err)
	}
	return &ports.TokenMetadata{Symbol: result.Symbol, Decimals: result.Decimals}, nil
}

// GetSpotPrice returns the USD price of symbol, served from cache when fresh.
func (o *Oracle) GetSpotPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	symbol = strings.ToUpper(symbol)
	id, ok := priceIDs[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price source for %q", symbol)
	}

	if o.cache != nil {
		price, hit, err := o.cache.Get(ctx, symbol)
		if err != nil {
			o.log.Warn().Err(err).Str("symbol", symbol).Msg("price cache read failed")
		} else if hit {
			return price, nil
		}
	}

	price, err := o.fetchPrice(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	if o.cache != nil {
		if err := o.cache.Set(ctx, symbol, price, o.priceTTL); err != nil {
			o.log.Warn().Err(err).Str("symbol", symbol).Msg("price cache write failed")
		}
	}
	return price, nil
}

func (o *Oracle) fetchPrice(ctx context.Context, id string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", "usd")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.priceURL+"?"+q.Encode(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building price request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetching price: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return decimal.Zero, fmt.Errorf("reading price response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("price api returned %d", resp.StatusCode)
	}

	usd := gjson.GetBytes(body, id+".usd")
	if !usd.Exists() || usd.Type != gjson.Number {
		return decimal.Zero, fmt.Errorf("price api response has no %s.usd", id)
	}
	price, err := decimal.NewFromString(usd.Raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing price %q: %w", usd.Raw, err)
	}
	return price, nil
}

// parseHexQuantity accepts zero-padded hex such as the 32 byte words
// token balance endpoints return, which hexutil rejects.
func parseHexQuantity(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return new(big.Int), nil
	}
	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity %q", s)
	}
	return n, nil
}
