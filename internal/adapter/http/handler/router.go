package handler

import (
	"oyunfor-gateway/internal/adapter/http/middleware"
	"oyunfor-gateway/internal/adapter/metrics"
	redisStore "oyunfor-gateway/internal/adapter/storage/redis"
	"oyunfor-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PartnerTokens  ports.PartnerTokenService
	AdminTokens    ports.AdminTokenService
	Flows          FlowHost
	AdSubmissions  ports.AdSubmissionService
	Users          ports.UserService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        *metrics.Metrics   // nil = no /metrics endpoint
	Docs           *DocsHandler       // nil = no /swagger endpoints
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep: PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if deps.Docs != nil {
		swagger := r.Group("/swagger")
		{
			swagger.GET("", deps.Docs.UI)
			swagger.GET("/spec", deps.Docs.Spec)
		}
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Partner tokens (paths fixed by the identity provider integration) ---
	tokenHandler := NewTokenHandler(deps.PartnerTokens)
	api := r.Group("/api")
	{
		api.GET("/auth-token", rl("tokens"), tokenHandler.AuthToken)
		api.GET("/issue-token", rl("tokens"), tokenHandler.IssueToken)
		api.GET("/.well-known/jwks", tokenHandler.JWKS)
	}

	v1 := r.Group("/api/v1")
	v1.GET("/verifier-url", rl("verifier_url"), tokenHandler.VerifierURL)

	adHandler := NewAdSubmissionHandler(deps.AdSubmissions)
	v1.POST("/ad-submissions", rl("ad_submit"), adHandler.Create)

	// --- Hosted flows ---
	flowHandler := NewFlowHandler(deps.Flows)
	issuance := v1.Group("/flows/issuance")
	{
		issuance.POST("", rl("flow_mount"), flowHandler.MountIssuance)
		issuance.GET("/:id", flowHandler.GetIssuance)
		issuance.DELETE("/:id", flowHandler.TeardownIssuance)

		act := issuance.Group("/:id", rl("flow_action"))
		act.POST("/login", flowHandler.Login)
		act.POST("/wallet/connect", flowHandler.ConnectWallet)
		act.PUT("/wallet", flowHandler.ReportWallet)
		act.POST("/wallet/signature", flowHandler.SubmitSignature)
		act.POST("/wallet/disconnect", flowHandler.DisconnectWallet)
		act.POST("/wallet/switch", flowHandler.SwitchWallet)
		act.POST("/balance/refresh", flowHandler.RefreshBalance)
		act.POST("/issue", flowHandler.Issue)
	}

	verification := v1.Group("/flows/verification")
	{
		verification.POST("", rl("flow_mount"), flowHandler.MountVerification)
		verification.GET("/:id", flowHandler.GetVerification)
		verification.DELETE("/:id", flowHandler.TeardownVerification)
		verification.POST("/:id/verify", rl("flow_action"), flowHandler.Verify)
		verification.POST("/:id/retry", rl("flow_action"), flowHandler.Retry)
	}

	// --- Staff routes (admin bearer JWT) ---
	jwtAuth := middleware.JWTAuth(deps.AdminTokens, deps.Logger)
	admin := v1.Group("/admin", jwtAuth, rl("admin"))

	ads := admin.Group("/ad-submissions")
	{
		ads.GET("", adHandler.List)
		ads.GET("/stats", adHandler.Stats)
		ads.GET("/export", adHandler.Export)
		ads.GET("/:id", adHandler.Get)
		ads.PATCH("/:id/status", adHandler.UpdateStatus)
		ads.DELETE("/:id", adHandler.Delete)
	}

	userHandler := NewUserHandler(deps.Users)
	users := admin.Group("/users/:identityId")
	{
		users.GET("/status", userHandler.Status)
		users.PUT("/verification", userHandler.UpdateVerification)
	}

	return r
}
