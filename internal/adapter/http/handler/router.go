package handler

import (
	"merchant-settlement/internal/adapter/http/middleware"
	redisStore "merchant-settlement/internal/adapter/storage/redis"
	"merchant-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.AccountService
	WithdrawalSvc  ports.WithdrawalService
	LinkingSvc     ports.LinkingService
	LoanSvc        ports.LoanService
	SettlementSvc  ports.SettlementService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	InternalAuth   middleware.InternalAuthConfig
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	CurrencySymbol string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (verifies PostgreSQL, Redis and RabbitMQ)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
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

	// --- HMAC-authenticated routes (order and onboarding services) ---
	internalAuth := middleware.InternalAuth(deps.InternalAuth, deps.SigSvc, deps.NonceStore, deps.Logger)
	internalHandler := NewInternalHandler(deps.AccountSvc, deps.SettlementSvc)
	internal := r.Group("/internal/v1", internalAuth, rl("internal"))
	{
		internal.POST("/accounts", internalHandler.ProvisionAccount)
		internal.POST("/orders/settled", internalHandler.SettleOrder)
	}

	// --- JWT-authenticated routes (merchant dashboard) ---
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	accountHandler := NewAccountHandler(deps.AccountSvc, deps.CurrencySymbol)
	accounts := v1.Group("/accounts/me")
	{
		accounts.GET("/balances", rl("dashboard"), accountHandler.GetBalances)
		accounts.GET("/bank", rl("dashboard"), accountHandler.GetLinkedBank)
	}
	v1.GET("/transfers", rl("dashboard"), accountHandler.ListTransfers)

	walletHandler := NewWalletHandler(deps.WithdrawalSvc)
	v1.POST("/wallet/transfers", rl("money"), walletHandler.TransferToWallet)

	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalSvc)
	withdrawals := v1.Group("/withdrawals")
	{
		withdrawals.POST("", rl("withdrawals"), withdrawalHandler.Start)
		withdrawals.GET("/current", rl("dashboard"), withdrawalHandler.Current)
		withdrawals.POST("/current/resend-otp", rl("withdrawals"), withdrawalHandler.ResendOtp)
		withdrawals.POST("/current/confirm", rl("withdrawals"), withdrawalHandler.Confirm)
		withdrawals.DELETE("/current", rl("withdrawals"), withdrawalHandler.Cancel)
	}

	linkingHandler := NewLinkingHandler(deps.LinkingSvc)
	bankLinks := v1.Group("/bank-links")
	{
		bankLinks.POST("", rl("bank_links"), linkingHandler.Start)
		bankLinks.POST("/:attempt_id/confirm", rl("bank_links"), linkingHandler.Confirm)
	}

	loanHandler := NewLoanHandler(deps.LoanSvc, deps.SettlementSvc, deps.CurrencySymbol)
	v1.GET("/loans/eligibility", rl("dashboard"), loanHandler.GetEligibility)
	v1.GET("/earnings/preview", rl("dashboard"), loanHandler.PreviewEarnings)

	return r
}
