package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-exchange-rate/internal/handlers"
	"github.com/sbilibin2017/gw-exchange-rate/internal/models"
	"github.com/sbilibin2017/gw-exchange-rate/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv(t *testing.T) {
	t.Helper()
	saved := os.Environ()
	os.Clearenv()
	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range saved {
			if k, v, ok := strings.Cut(kv, "="); ok {
				_ = os.Setenv(k, v)
			}
		}
	})
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-18"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2026-10-18\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)

	assert.Equal(t, "localhost", cfg.pgHost)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, "user", cfg.pgUser)
	assert.Equal(t, "password", cfg.pgPassword)
	assert.Equal(t, "database", cfg.pgDB)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 8, cfg.pgMaxIdleConns)

	assert.Equal(t, "localhost", cfg.redisHost)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, 0, cfg.redisDB)
	assert.Empty(t, cfg.redisPassword)
	assert.Equal(t, 10, cfg.redisPoolSize)
	assert.Equal(t, 2, cfg.redisMinIdleConns)

	assert.Empty(t, cfg.navasanAPIKey)
	assert.Equal(t, "http://api.navasan.tech", cfg.navasanBaseURL)
	assert.Equal(t, 8*time.Second, cfg.navasanTimeout)

	assert.Equal(t, services.DefaultPolicyConfig(), cfg.policy)
	assert.Equal(t, 48*time.Hour, cfg.cacheTTL)

	assert.Empty(t, cfg.kafkaBrokers)
	assert.Equal(t, "exchange-rate.refreshed", cfg.kafkaTopic)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_DB", "2")

	t.Setenv("NAVASAN_API_KEY", "secret-key")
	t.Setenv("NAVASAN_BASE_URL", "http://navasan.local/")
	t.Setenv("NAVASAN_TIMEOUT_SECOND", "3")

	t.Setenv("RATE_MONTHLY_LIMIT", "500")
	t.Setenv("RATE_FRESH_THRESHOLD_HOURS", "2")
	t.Setenv("RATE_STALE_THRESHOLD_HOURS", "48")
	t.Setenv("RATE_CONSERVATION_THRESHOLD", "20")
	t.Setenv("RATE_CONSERVATION_INTERVAL_HOURS", "6")
	t.Setenv("RATE_CACHE_TTL_SECOND", "60")

	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("KAFKA_TOPIC", "rates")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.appHost)
	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.Equal(t, "pg.example.com", cfg.pgHost)
	assert.Equal(t, 5433, cfg.pgPort)
	assert.Equal(t, 20, cfg.pgMaxOpenConns)
	assert.Equal(t, "redis.example.com", cfg.redisHost)
	assert.Equal(t, 2, cfg.redisDB)

	assert.Equal(t, "secret-key", cfg.navasanAPIKey)
	assert.Equal(t, "http://navasan.local/", cfg.navasanBaseURL)
	assert.Equal(t, 3*time.Second, cfg.navasanTimeout)

	assert.Equal(t, services.PolicyConfig{
		MonthlyLimit:          500,
		FreshThreshold:        2 * time.Hour,
		StaleThreshold:        48 * time.Hour,
		ConservationThreshold: 20,
		ConservationInterval:  6 * time.Hour,
	}, cfg.policy)
	assert.Equal(t, time.Minute, cfg.cacheTTL)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.kafkaBrokers)
	assert.Equal(t, "rates", cfg.kafkaTopic)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv(t)

	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nNAVASAN_API_KEY=from-file\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.appPort)
	assert.Equal(t, "from-file", cfg.navasanAPIKey)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "postgres_port", env: map[string]string{"POSTGRES_PORT": "abc"}},
		{name: "redis_db", env: map[string]string{"REDIS_DB": "x"}},
		{name: "navasan_timeout", env: map[string]string{"NAVASAN_TIMEOUT_SECOND": "soon"}},
		{name: "monthly_limit", env: map[string]string{"RATE_MONTHLY_LIMIT": "many"}},
		{name: "cache_ttl", env: map[string]string{"RATE_CACHE_TTL_SECOND": "1d"}},
		{name: "fresh_after_stale", env: map[string]string{
			"RATE_FRESH_THRESHOLD_HOURS": "30",
			"RATE_STALE_THRESHOLD_HOURS": "24",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockExchangeRateGetter(ctrl)
	svc.EXPECT().
		GetExchangeRate(gomock.Any(), "secret-key").
		Return(&models.ExchangeRateResponse{
			USD:  models.USDRate{Value: "585000"},
			Meta: models.ExchangeRateMeta{Freshness: models.FreshnessFresh, Source: models.SourceCached},
		}, nil)

	cfg := config{appHost: "localhost", appPort: "8080", navasanAPIKey: "secret-key"}
	health := handlers.NewHealthHandler(
		map[string]handlers.HealthCheck{"postgres": func(context.Context) error { return nil }},
		map[string]handlers.HealthCheck{"redis": func(context.Context) error { return errors.New("redis down") }},
	)
	router := newRouter(cfg, svc, health)

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "exchange_rate", path: "/api/v1/exchange-rate", wantCode: http.StatusOK},
		{name: "healthz", path: "/healthz", wantCode: http.StatusOK},
		{name: "metrics", path: "/metrics", wantCode: http.StatusOK},
		{name: "swagger_doc", path: "/swagger/doc.json", wantCode: http.StatusOK},
		{name: "unknown", path: "/api/v1/rates", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}
