package integration

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"oyunfor-gateway/internal/core/domain"
	"oyunfor-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// fakeIdentityService serves the subset of the identity API the gateway calls.
type fakeIdentityService struct {
	loginDelay time.Duration
	verdict    atomic.Value // string

	mu      sync.Mutex
	issued  []map[string]interface{}
	logins  int
	verifys int
}

func newFakeIdentityService() *fakeIdentityService {
	f := &fakeIdentityService{}
	f.verdict.Store(domain.CompliantStatus)
	return f
}

func (f *fakeIdentityService) setVerdict(v string) {
	f.verdict.Store(v)
}

func (f *fakeIdentityService) issuedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.issued)
}

func (f *fakeIdentityService) loginCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logins
}

func (f *fakeIdentityService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/init", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/v1/preload-credential", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		if f.loginDelay > 0 {
			time.Sleep(f.loginDelay)
		}
		f.mu.Lock()
		f.logins++
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"sessionToken":"sess-integration"}`)
	})
	mux.HandleFunc("/v1/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/v1/credentials/issue", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"message":"bad request"}`)
			return
		}
		f.mu.Lock()
		f.issued = append(f.issued, body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/v1/credentials/verify", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.verifys++
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"status": f.verdict.Load().(string)})
	})
	mux.HandleFunc("/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"user":{"id":"identity-user-1","email":"player@oyunfor.example"}}`)
	})
	return mux
}

// memOracle is a fixed-balance BalanceOracle.
type memOracle struct {
	mu       sync.Mutex
	native   map[string]*big.Int // lower-cased address -> wei
	ethPrice decimal.Decimal
}

func newMemOracle(ethPrice decimal.Decimal) *memOracle {
	return &memOracle{native: make(map[string]*big.Int), ethPrice: ethPrice}
}

func (o *memOracle) fund(address string, wei *big.Int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.native[strings.ToLower(address)] = wei
}

func (o *memOracle) GetNativeBalance(ctx context.Context, address string) (*big.Int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if wei, ok := o.native[strings.ToLower(address)]; ok {
		return new(big.Int).Set(wei), nil
	}
	return big.NewInt(0), nil
}

func (o *memOracle) GetTokenBalances(ctx context.Context, address string) ([]ports.TokenBalance, error) {
	return nil, nil
}

func (o *memOracle) GetTokenMetadata(ctx context.Context, contract string) (*ports.TokenMetadata, error) {
	return &ports.TokenMetadata{}, nil
}

func (o *memOracle) GetSpotPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	return o.ethPrice, nil
}
