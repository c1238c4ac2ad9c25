package identity

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"oyunfor-gateway/config"
	"oyunfor-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// initOptions is the body of the identity service init call.
type initOptions struct {
	PartnerID       string `json:"partnerId"`
	BuildEnv        string `json:"buildEnv"`
	EnableLogging   bool   `json:"enableLogging"`
	SkipRehydration bool   `json:"skipRehydration"`
}

// Provider is the process-wide identity service handle. One Provider is
// built at startup and shared by every flow session.
type Provider struct {
	cfg       config.IdentityConfig
	partnerID string
	client    *http.Client
	log       zerolog.Logger

	group       singleflight.Group
	initialized atomic.Bool

	mu      sync.Mutex
	initErr error
}

// NewProvider creates an uninitialized provider.
func NewProvider(cfg config.IdentityConfig, partnerID string, log zerolog.Logger) *Provider {
	return &Provider{
		cfg:       cfg,
		partnerID: partnerID,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		log:       log,
	}
}

// Init runs the identity service setup once. Concurrent callers share the
// in-flight attempt, which runs detached from any caller's context: a caller
// that gives up only stops waiting. A failed init is logged and recorded, and
// the provider still reports itself initialized so waiting flows can proceed
// and surface errors on their own calls.
func (p *Provider) Init(ctx context.Context) error {
	if p.initialized.Load() {
		return p.InitError()
	}

	ch := p.group.DoChan("init", func() (interface{}, error) {
		if p.initialized.Load() {
			return nil, p.InitError()
		}
		return nil, p.runInit(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Provider) runInit(base context.Context) error {
	ctx, cancel := p.bounded(base)
	err := do(ctx, p.client, p.cfg.BaseURL, http.MethodPost, "/v1/init", "", initOptions{
		PartnerID:     p.partnerID,
		BuildEnv:      p.cfg.BuildEnv,
		EnableLogging: p.cfg.EnableLogging,
	}, nil)
	cancel()

	if err != nil {
		p.log.Error().Err(err).Str("build_env", p.cfg.BuildEnv).Msg("identity service init failed")
		p.mu.Lock()
		p.initErr = err
		p.mu.Unlock()
	} else if p.cfg.PreloadCredential {
		ctx, cancel := p.bounded(base)
		if perr := do(ctx, p.client, p.cfg.BaseURL, http.MethodPost, "/v1/preload-credential", "", nil, nil); perr != nil {
			p.log.Warn().Err(perr).Msg("credential preload failed (non-critical)")
		}
		cancel()
	}

	p.initialized.Store(true)
	if err == nil {
		p.log.Info().Str("build_env", p.cfg.BuildEnv).Msg("identity service initialized")
	}
	return err
}

// bounded limits one init request to the configured request timeout.
func (p *Provider) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.RequestTimeout)
}

// Initialized reports whether Init has completed, successfully or not.
func (p *Provider) Initialized() bool {
	return p.initialized.Load()
}

// InitError returns the error recorded by a failed Init.
func (p *Provider) InitError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initErr
}

// Acquire returns a new logged-out session bound to this provider.
func (p *Provider) Acquire() ports.IdentitySession {
	return &Session{
		client:  p.client,
		baseURL: p.cfg.BaseURL,
		log:     p.log,
		subs:    make(map[int]func(ports.IdentityEvent)),
	}
}
