package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-exchange-rate/docs"
	"github.com/sbilibin2017/gw-exchange-rate/internal/facades"
	"github.com/sbilibin2017/gw-exchange-rate/internal/handlers"
	"github.com/sbilibin2017/gw-exchange-rate/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rate/internal/metrics"
	"github.com/sbilibin2017/gw-exchange-rate/internal/middlewares"
	"github.com/sbilibin2017/gw-exchange-rate/internal/migrations"
	"github.com/sbilibin2017/gw-exchange-rate/internal/repositories"
	"github.com/sbilibin2017/gw-exchange-rate/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	navasanAPIKey  string
	navasanBaseURL string
	navasanTimeout time.Duration

	policy   services.PolicyConfig
	cacheTTL time.Duration

	kafkaBrokers []string
	kafkaTopic   string
}

// @title gw-exchange-rate API
// @version 1.0.0
// @description USD/Toman exchange rate service that conserves the Navasan API quota
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, upstream, policy and Kafka configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Navasan config
	cfg.navasanAPIKey = getEnv("NAVASAN_API_KEY", "")
	cfg.navasanBaseURL = getEnv("NAVASAN_BASE_URL", "http://api.navasan.tech")
	timeoutSecond, err := getInt("NAVASAN_TIMEOUT_SECOND", "8")
	if err != nil {
		return
	}
	cfg.navasanTimeout = time.Duration(timeoutSecond) * time.Second

	// Refresh policy config
	defaults := services.DefaultPolicyConfig()
	if cfg.policy.MonthlyLimit, err = getInt("RATE_MONTHLY_LIMIT", strconv.Itoa(defaults.MonthlyLimit)); err != nil {
		return
	}
	freshHours, err := getInt("RATE_FRESH_THRESHOLD_HOURS", strconv.Itoa(int(defaults.FreshThreshold.Hours())))
	if err != nil {
		return
	}
	staleHours, err := getInt("RATE_STALE_THRESHOLD_HOURS", strconv.Itoa(int(defaults.StaleThreshold.Hours())))
	if err != nil {
		return
	}
	if cfg.policy.ConservationThreshold, err = getInt("RATE_CONSERVATION_THRESHOLD", strconv.Itoa(defaults.ConservationThreshold)); err != nil {
		return
	}
	intervalHours, err := getInt("RATE_CONSERVATION_INTERVAL_HOURS", strconv.Itoa(int(defaults.ConservationInterval.Hours())))
	if err != nil {
		return
	}
	cfg.policy.FreshThreshold = time.Duration(freshHours) * time.Hour
	cfg.policy.StaleThreshold = time.Duration(staleHours) * time.Hour
	cfg.policy.ConservationInterval = time.Duration(intervalHours) * time.Hour
	if cfg.policy.FreshThreshold > cfg.policy.StaleThreshold {
		err = fmt.Errorf("RATE_FRESH_THRESHOLD_HOURS (%d) exceeds RATE_STALE_THRESHOLD_HOURS (%d)", freshHours, staleHours)
		return
	}

	cacheTTLSecond, err := getInt("RATE_CACHE_TTL_SECOND", "172800")
	if err != nil {
		return
	}
	cfg.cacheTTL = time.Duration(cacheTTLSecond) * time.Second

	// Kafka config
	cfg.kafkaBrokers = lo.Compact(lo.Map(strings.Split(getEnv("KAFKA_BROKERS", ""), ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "exchange-rate.refreshed")

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer, upstream facade and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel, "version", buildVersion); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	if cfg.navasanAPIKey == "" {
		logger.Log.Warn("NAVASAN_API_KEY is empty, exchange rate requests will fail")
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if err := migrations.Run(db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Log.Info("Database migrations applied")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// The cache is optional: reads fall through to PostgreSQL.
		logger.Log.Warnw("Redis is unreachable, continuing without a warm cache", "error", err)
	}

	// Kafka writer is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	// Initialize repositories
	rateReadRepo := repositories.NewRateRecordReadRepository(db)
	rateWriteRepo := repositories.NewRateRecordWriteRepository(db)
	rateCacheRepo := repositories.NewRateRecordCacheRepository(rdb, cfg.cacheTTL)
	usageReadRepo := repositories.NewUsageReadRepository(db)
	usageWriteRepo := repositories.NewUsageWriteRepository(db)

	// Initialize upstream facade
	navasan := facades.NewNavasanHTTPFacade(cfg.navasanBaseURL, cfg.navasanTimeout)

	// Initialize services
	rateService := services.NewExchangeRateService(
		rateReadRepo, rateWriteRepo, rateCacheRepo,
		usageReadRepo, usageWriteRepo,
		navasan, kafkaWriter,
		cfg.policy,
	)
	defer rateService.Wait()

	// Redis only accelerates reads, so losing it degrades health without failing it.
	health := handlers.NewHealthHandler(
		map[string]handlers.HealthCheck{"postgres": db.PingContext},
		map[string]handlers.HealthCheck{"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}},
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           newRouter(cfg, rateService, health),
		ReadHeaderTimeout: 5 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the public API, health, metrics and swagger routes.
func newRouter(cfg config, rates handlers.ExchangeRateGetter, health http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware())

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterGetExchangeRateHandler(r, handlers.NewGetExchangeRateHandler(rates, cfg.navasanAPIKey))
	})

	handlers.RegisterHealthHandler(r, health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	return r
}
