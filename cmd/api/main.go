package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oyunfor-gateway/config"
	"oyunfor-gateway/internal/adapter/chain"
	httpHandler "oyunfor-gateway/internal/adapter/http/handler"
	"oyunfor-gateway/internal/adapter/identity"
	"oyunfor-gateway/internal/adapter/metrics"
	pgStorage "oyunfor-gateway/internal/adapter/storage/postgres"
	redisStorage "oyunfor-gateway/internal/adapter/storage/redis"
	"oyunfor-gateway/internal/adapter/wallet"
	"oyunfor-gateway/internal/core/ports"
	"oyunfor-gateway/internal/service"
	"oyunfor-gateway/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("partner_id", cfg.Partner.ID).
		Msg("Starting Oyunfor Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(cfg.Database, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Chain balance oracle
	oracle, err := chain.Dial(ctx, cfg.Balance, redisStorage.NewPriceCache(rdb), logger.Component(log, "chain"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to dial chain RPC")
	}
	defer oracle.Close()

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	adRepo := pgStorage.NewAdSubmissionRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)

	// Initialize core services
	partnerTokens, err := service.NewPartnerTokenService(cfg.Partner, m)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize partner token service")
	}
	adminTokens := service.NewJWTTokenService(cfg.Admin.JWTSecret, cfg.Admin.SessionTTL, cfg.Admin.JWTIssuer)

	// Initialize business services
	userSvc := service.NewUserService(userRepo)
	adSvc := service.NewAdSubmissionService(adRepo, logger.Component(log, "ad_submissions"))
	auditSvc := service.NewAuditService(auditRepo, log)
	balanceSvc := service.NewBalanceService(oracle, m, logger.Component(log, "balance"))

	// Flow host
	flowLog := logger.Component(log, "flows")
	flows := service.NewFlowRegistry(service.FlowDeps{
		Provider:  identity.NewProvider(cfg.Identity, cfg.Partner.ID, logger.Component(log, "identity")),
		Tokens:    partnerTokens,
		Balances:  balanceSvc,
		Users:     userSvc,
		NewWallet: func() ports.WalletBridge { return wallet.NewBridge(flowLog) },
		NewTicker: service.NewTimeTicker,
		Metrics:   m,
		Log:       flowLog,
	}, service.IssuanceSettings{
		PartnerID:    cfg.Partner.ID,
		IssuerDID:    cfg.Identity.IssuerDID,
		CredentialID: cfg.Identity.CredentialID,
		SiteName:     cfg.Site.Name,
	}, service.VerificationSettings{
		ProgramID:   cfg.Identity.VerifierProgramID,
		RedirectURL: cfg.Identity.IssuerURL,
	}, cfg.Flow.SessionTTL)
	flows.Start(ctx, cfg.Flow.ReapInterval)
	defer flows.Stop()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	var docs *httpHandler.DocsHandler
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		docs = httpHandler.NewDocsHandler("Oyunfor Gateway API", specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PartnerTokens:  partnerTokens,
		AdminTokens:    adminTokens,
		Flows:          flows,
		AdSubmissions:  adSvc,
		Users:          userSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Metrics:        m,
		Docs:           docs,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
