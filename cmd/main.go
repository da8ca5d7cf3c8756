package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/cookiecash/trading-wallet/docs"
	"github.com/cookiecash/trading-wallet/internal/facades"
	"github.com/cookiecash/trading-wallet/internal/handlers"
	"github.com/cookiecash/trading-wallet/internal/jwt"
	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/middlewares"
	"github.com/cookiecash/trading-wallet/internal/repositories"
	"github.com/cookiecash/trading-wallet/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings loaded from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgDSN          string
	pgMaxOpenConns int
	pgMaxIdleConns int
	migrationsPath string

	redisAddr         string
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBroker string
	kafkaTopic  string

	quotesBaseURL string
	quotesAPIKey  string
	quotesTimeout time.Duration
	quoteCacheTTL time.Duration

	jwtSecretKey string
	jwtExp       time.Duration
}

// @title trading-wallet API
// @version 1.0.0
// @description Backend for a trading platform: wallets backed by an append-only transaction log, trading, copy trading, investment strategies and admin operations
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		val := getEnv(key, strconv.Itoa(defaultValue))
		return strconv.Atoi(val)
	}

	var cfg config
	var err error

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost := getEnv("POSTGRES_HOST", "localhost")
	pgUser := getEnv("POSTGRES_USER", "user")
	pgPassword := getEnv("POSTGRES_PASSWORD", "password")
	pgDB := getEnv("POSTGRES_DB", "database")
	pgPort, err := getEnvInt("POSTGRES_PORT", 5432)
	if err != nil {
		return cfg, err
	}
	cfg.pgDSN = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return cfg, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return cfg, err
	}
	cfg.migrationsPath = getEnv("MIGRATIONS_PATH", "migrations")

	// Redis config
	redisHost := getEnv("REDIS_HOST", "localhost")
	redisPort, err := getEnvInt("REDIS_PORT", 6379)
	if err != nil {
		return cfg, err
	}
	cfg.redisAddr = fmt.Sprintf("%s:%d", redisHost, redisPort)
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return cfg, err
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return cfg, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return cfg, err
	}

	// Kafka config; an empty broker disables event publishing
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-events")

	// Quote provider config
	cfg.quotesBaseURL = getEnv("QUOTES_BASE_URL", "https://www.alphavantage.co")
	cfg.quotesAPIKey = getEnv("QUOTES_API_KEY", "demo")
	quotesTimeout, err := getEnvInt("QUOTES_TIMEOUT_SECOND", 5)
	if err != nil {
		return cfg, err
	}
	cfg.quotesTimeout = time.Duration(quotesTimeout) * time.Second
	quoteCacheTTL, err := getEnvInt("QUOTES_CACHE_TTL_SECOND", 30)
	if err != nil {
		return cfg, err
	}
	cfg.quoteCacheTTL = time.Duration(quoteCacheTTL) * time.Second

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := getEnvInt("JWT_EXP_SECOND", 3600)
	if err != nil {
		return cfg, err
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, the quote provider and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Run migrations
	m, err := migrate.New("file://"+cfg.migrationsPath, cfg.pgDSN)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Log.Info("Migrations applied")

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.pgDSN)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.redisAddr,
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for wallet and notification events
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka producer initialized for topic %s", cfg.kafkaTopic)
	} else {
		logger.Log.Info("Kafka broker not configured, event publishing disabled")
	}

	// Initialize JWT service
	jwtService := jwt.New(cfg.jwtSecretKey, cfg.jwtExp)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	ledgerReadRepo := repositories.NewLedgerReadRepository(db)
	ledgerWriteRepo := repositories.NewLedgerWriteRepository(db, txGetter)
	tradeReadRepo := repositories.NewTradeReadRepository(db)
	tradeWriteRepo := repositories.NewTradeWriteRepository(db, txGetter)
	withdrawalReadRepo := repositories.NewWithdrawalReadRepository(db)
	withdrawalWriteRepo := repositories.NewWithdrawalWriteRepository(db, txGetter)
	copySubRepo := repositories.NewCopySubscriptionRepository(db, txGetter)
	strategyReadRepo := repositories.NewStrategyReadRepository(db)
	strategySubRepo := repositories.NewStrategySubscriptionRepository(db, txGetter)
	quoteCacheRepo := repositories.NewQuoteCacheRepository(rdb, cfg.quoteCacheTTL)

	// Initialize facades
	quotesFacade := facades.NewAlphaVantageQuotesFacade(cfg.quotesBaseURL, cfg.quotesAPIKey, cfg.quotesTimeout)

	// Initialize services
	ledgerService := services.NewLedgerService(ledgerReadRepo, ledgerWriteRepo, kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, kafkaWriter)
	walletService := services.NewWalletService(ledgerService, userReadRepo, withdrawalWriteRepo, withdrawalReadRepo, kafkaWriter)
	withdrawalAdminService := services.NewWithdrawalAdminService(withdrawalReadRepo, withdrawalWriteRepo, ledgerService)
	tradingService := services.NewTradingService(quotesFacade, quoteCacheRepo, ledgerService, tradeWriteRepo, tradeReadRepo, userReadRepo, kafkaWriter)
	copyTradingService := services.NewCopyTradingService(copySubRepo, userReadRepo)
	strategyService := services.NewStrategyService(strategyReadRepo, strategySubRepo, ledgerService, userReadRepo, kafkaWriter)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, ledgerService, ledgerService)

	// Setup router
	authMiddleware := middlewares.AuthMiddleware(jwtService)
	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/prices", handlers.NewGetPricesHandler(tradingService))
		r.Get("/strategies", handlers.NewListStrategiesHandler(strategyService))

		// Authenticated read routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/balance", handlers.NewGetBalanceHandler(walletService))
			r.Get("/wallet/transactions", handlers.NewListTransactionsHandler(walletService))
			r.Get("/wallet/deposits", handlers.NewListDepositsHandler(walletService))
			r.Get("/wallet/withdrawals", handlers.NewListWithdrawalsHandler(walletService))
			r.Get("/trades", handlers.NewListTradesHandler(tradingService))
			r.Get("/copy/subscriptions", handlers.NewListCopySubscriptionsHandler(copyTradingService))
			r.Get("/strategies/mine", handlers.NewMyStrategiesHandler(strategyService))
		})

		// Authenticated write routes run inside a request transaction
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, txMiddleware)
			r.Post("/wallet/deposit", handlers.NewDepositHandler(walletService))
			r.Post("/wallet/withdraw", handlers.NewWithdrawHandler(walletService))
			r.Post("/wallet/transfer", handlers.NewTransferHandler(walletService))
			r.Post("/trade", handlers.NewPlaceTradeHandler(tradingService))
			r.Post("/copy/subscribe", handlers.NewCopySubscribeHandler(copyTradingService))
			r.Post("/copy/unsubscribe", handlers.NewCopyUnsubscribeHandler(copyTradingService))
			r.Post("/strategies/{id}/subscribe", handlers.NewStrategySubscribeHandler(strategyService))
			r.Post("/strategies/{id}/unsubscribe", handlers.NewStrategyUnsubscribeHandler(strategyService))
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, middlewares.AdminMiddleware())
			r.Get("/admin/users", handlers.NewAdminListUsersHandler(adminService))
			r.Get("/admin/users/{id}/audit", handlers.NewAdminAuditUserHandler(adminService))
			r.Get("/admin/withdrawals", handlers.NewAdminListWithdrawalsHandler(withdrawalAdminService))

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/admin/users/{id}/block", handlers.NewAdminBlockUserHandler(adminService))
				r.Post("/admin/users/{id}/balance", handlers.NewAdminSetBalanceHandler(adminService))
				r.Post("/admin/withdrawals/{id}/approve", handlers.NewAdminApproveWithdrawalHandler(withdrawalAdminService))
				r.Post("/admin/withdrawals/{id}/reject", handlers.NewAdminRejectWithdrawalHandler(withdrawalAdminService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
