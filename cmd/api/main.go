package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"merchant-settlement/config"
	apidocs "merchant-settlement/docs/api"
	httpHandler "merchant-settlement/internal/adapter/http/handler"
	"merchant-settlement/internal/adapter/http/middleware"
	"merchant-settlement/internal/adapter/messaging/rabbitmq"
	"merchant-settlement/internal/adapter/resolver"
	"merchant-settlement/internal/adapter/scheduler"
	memStorage "merchant-settlement/internal/adapter/storage/memory"
	pgStorage "merchant-settlement/internal/adapter/storage/postgres"
	redisStorage "merchant-settlement/internal/adapter/storage/redis"
	"merchant-settlement/internal/core/loanscore"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/internal/service"
	"merchant-settlement/pkg/logger"
	"merchant-settlement/pkg/money"

	"github.com/rs/zerolog"
)

// repositories is the storage driver selected by storage.driver.
type repositories struct {
	accounts    ports.AccountRepository
	transfers   ports.TransferRepository
	withdrawals ports.WithdrawalRepository
	orders      ports.OrderRepository
	idempotency ports.IdempotencyRepository
	audit       ports.AuditRepository
	transactor  ports.DBTransactor
	health      ports.HealthChecker
	close       func()
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	if cfg.Storage.Driver == "memory" {
		log.Warn().Msg("Using in-memory storage, balances are lost on restart")
		store := memStorage.NewStore()
		return &repositories{
			accounts:    memStorage.NewAccountRepo(store),
			transfers:   memStorage.NewTransferRepo(store),
			withdrawals: memStorage.NewWithdrawalRepo(store),
			orders:      memStorage.NewOrderRepo(store),
			idempotency: memStorage.NewIdempotencyRepo(store),
			audit:       memStorage.NewAuditRepo(store),
			transactor:  store,
			health:      memStorage.HealthCheck{},
			close:       func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("PostgreSQL connected")

	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info().Msg("Database schema up to date")
	}

	return &repositories{
		accounts:    pgStorage.NewAccountRepo(pool),
		transfers:   pgStorage.NewTransferRepo(pool),
		withdrawals: pgStorage.NewWithdrawalRepo(pool),
		orders:      pgStorage.NewOrderRepo(pool),
		idempotency: pgStorage.NewIdempotencyRepo(pool),
		audit:       pgStorage.NewAuditRepo(pool),
		transactor:  pgStorage.NewTransactor(pool),
		health:      pgStorage.NewHealthCheck(pool),
		close:       pool.Close,
	}, nil
}

// notifier implements both OTP delivery and event publishing.
type notifier interface {
	ports.OtpSender
	ports.EventPublisher
}

func openBroker(cfg config.RabbitMQConfig, log zerolog.Logger) (notifier, *rabbitmq.Producer, error) {
	if cfg.URL == "" {
		log.Warn().Msg("rabbitmq.url is empty, OTPs and withdrawal events will only be logged")
		return rabbitmq.NewFallbackNotifier(log), nil, nil
	}
	producer, err := rabbitmq.NewProducer(cfg.URL, cfg.Exchange, log)
	if err != nil {
		return nil, nil, err
	}
	return rabbitmq.NewNotifier(producer), producer, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("MSS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Merchant Settlement Service")

	ctx := context.Background()

	repos, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer repos.close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	attemptLimiter := redisStorage.NewAttemptLimiter(rateLimitStore, cfg.RateLimit.PinAttempts, cfg.RateLimit.PinWindow)
	linkingStore := redisStorage.NewLinkingAttemptStore(rdb)

	// Initialize broker
	notify, producer, err := openBroker(cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
	}
	if producer != nil {
		defer producer.Close()
	}

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	ledgerSvc := service.NewLedgerService(repos.accounts, repos.transfers, repos.transactor, log)
	accountSvc := service.NewAccountService(repos.accounts, repos.transfers, hashSvc, cfg.Currency.Code, log)
	settlementSvc := service.NewSettlementService(
		ledgerSvc,
		repos.orders,
		repos.idempotency,
		idempotencyCache,
		repos.transactor,
		log,
	)
	withdrawalSvc := service.NewWithdrawalService(service.WithdrawalDeps{
		Accounts:    repos.accounts,
		Withdrawals: repos.withdrawals,
		Ledger:      ledgerSvc,
		Transactor:  repos.transactor,
		HashSvc:     hashSvc,
		Limiter:     attemptLimiter,
		SigSvc:      sigSvc,
		OtpGen:      service.NewCryptoOtpGenerator(),
		OtpSender:   notify,
		Publisher:   notify,
		Policy: service.WithdrawalPolicy{
			MinAmount:      money.Amount(cfg.Withdrawal.MinAmount),
			OtpTTL:         cfg.Withdrawal.OtpTTL,
			MaxOtpAttempts: cfg.Withdrawal.MaxOtpAttempts,
			MaxOtpResends:  cfg.Withdrawal.MaxOtpResends,
			StaleAfter:     cfg.Withdrawal.StaleAfter,
			DigestSecret:   cfg.Security.DigestSecret,
		},
		Logger: log,
	})
	linkingSvc := service.NewLinkingService(service.LinkingDeps{
		Accounts:     repos.accounts,
		Attempts:     linkingStore,
		Resolver:     resolver.NewClient(cfg.Resolver.BaseURL, cfg.Resolver.APIKey, cfg.Resolver.Timeout, log),
		Transactor:   repos.transactor,
		EncSvc:       encSvc,
		HashSvc:      hashSvc,
		SigSvc:       sigSvc,
		Limiter:      attemptLimiter,
		AttemptTTL:   cfg.Linking.AttemptTTL,
		DigestSecret: cfg.Security.DigestSecret,
		Logger:       log,
	})
	loanSvc := service.NewLoanService(repos.orders, loanscore.DefaultPolicy(), cfg.Loan.Lookback, log)
	auditSvc := service.NewAuditService(repos.audit, log)

	// Stale withdrawal sweep
	sched := scheduler.New(withdrawalSvc, cfg.Scheduler.SessionCleanup, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	// Initialize health checkers
	checkers := []ports.HealthChecker{repos.health, redisStorage.NewHealthCheck(rdb)}
	if producer != nil {
		checkers = append(checkers, producer)
	}

	httpHandler.SetSwaggerSpec(apidocs.OpenAPI)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:    accountSvc,
		WithdrawalSvc: withdrawalSvc,
		LinkingSvc:    linkingSvc,
		LoanSvc:       loanSvc,
		SettlementSvc: settlementSvc,
		SigSvc:        sigSvc,
		NonceStore:    nonceStore,
		TokenSvc:      tokenSvc,
		InternalAuth: middleware.InternalAuthConfig{
			Secret:    cfg.InternalAuth.Secret,
			ServiceID: cfg.InternalAuth.ServiceID,
			MaxSkew:   cfg.InternalAuth.MaxSkew,
			NonceTTL:  cfg.InternalAuth.NonceTTL,
		},
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		AuditSvc:       auditSvc,
		CurrencySymbol: cfg.Currency.Symbol,
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
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn().Msg("Scheduler jobs still running at shutdown")
	}

	log.Info().Msg("Server exited")
}
