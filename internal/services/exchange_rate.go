package services

//go:generate mockgen -source=exchange_rate.go -destination=mock_exchange_rate.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sbilibin2017/gw-exchange-rate/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rate/internal/metrics"
	"github.com/sbilibin2017/gw-exchange-rate/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingAPIKey is returned when no upstream credential is configured.
	ErrMissingAPIKey = errors.New("navasan api key is not configured")
	// ErrRateUnavailable is returned when there is neither a cached record nor a fresh fetch.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// maxRateValue is the largest rate that fits the BIGINT column.
var maxRateValue = decimal.NewFromInt(math.MaxInt64)

// RateRecordReader reads the latest persisted rate record.
type RateRecordReader interface {
	GetLatest(ctx context.Context) (*models.RateRecord, error)
}

// RateRecordWriter appends rate records.
type RateRecordWriter interface {
	Append(ctx context.Context, record *models.RateRecord) error
}

// RateRecordCache keeps the latest rate record close at hand.
type RateRecordCache interface {
	GetLatest(ctx context.Context) (*models.RateRecord, error)
	SetLatest(ctx context.Context, record *models.RateRecord) error
}

// UsageReader reads the latest quota observation.
type UsageReader interface {
	GetLatest(ctx context.Context) (*models.UsageSnapshot, error)
}

// UsageWriter appends quota observations.
type UsageWriter interface {
	Append(ctx context.Context, snapshot *models.UsageSnapshot) error
}

// RateFetcher calls the upstream rate provider.
type RateFetcher interface {
	FetchRate(ctx context.Context, apiKey string) (*models.NavasanRate, error)
	FetchUsage(ctx context.Context, apiKey string) (*models.NavasanUsage, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Option configures an ExchangeRateService.
type Option func(*ExchangeRateService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *ExchangeRateService) {
		s.now = now
	}
}

// WithBackgroundTimeout bounds the post-response usage check and event publishing.
func WithBackgroundTimeout(d time.Duration) Option {
	return func(s *ExchangeRateService) {
		s.backgroundTimeout = d
	}
}

// ExchangeRateService serves the USD/Toman rate from cache or upstream,
// spending upstream quota only when the refresh policy allows it.
type ExchangeRateService struct {
	rateReader  RateRecordReader
	rateWriter  RateRecordWriter
	rateCache   RateRecordCache
	usageReader UsageReader
	usageWriter UsageWriter
	fetcher     RateFetcher
	kafkaWriter KafkaWriter

	cfg    PolicyConfig
	policy *RefreshPolicy

	now               func() time.Time
	backgroundTimeout time.Duration
	wg                sync.WaitGroup
}

// NewExchangeRateService creates a new service instance.
// rateCache and kafkaWriter may be nil.
func NewExchangeRateService(
	rateReader RateRecordReader,
	rateWriter RateRecordWriter,
	rateCache RateRecordCache,
	usageReader UsageReader,
	usageWriter UsageWriter,
	fetcher RateFetcher,
	kafkaWriter KafkaWriter,
	cfg PolicyConfig,
	opts ...Option,
) *ExchangeRateService {
	svc := &ExchangeRateService{
		rateReader:        rateReader,
		rateWriter:        rateWriter,
		rateCache:         rateCache,
		usageReader:       usageReader,
		usageWriter:       usageWriter,
		fetcher:           fetcher,
		kafkaWriter:       kafkaWriter,
		cfg:               cfg,
		policy:            NewRefreshPolicy(cfg),
		now:               time.Now,
		backgroundTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// GetExchangeRate returns the current rate together with its provenance.
// It fails only when the API key is missing or no rate is known at all.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, apiKey string) (*models.ExchangeRateResponse, error) {
	log := logger.FromContext(ctx)
	if apiKey == "" {
		log.Error("exchange rate requested without a configured navasan api key")
		return nil, ErrMissingAPIKey
	}

	now := s.now()
	current := s.latestRecord(ctx, now)
	usage := s.latestUsage(ctx)

	decision := s.policy.Decide(current, usage, now)
	metrics.RefreshDecisionsTotal.WithLabelValues(string(decision.Reason), strconv.FormatBool(decision.Refresh)).Inc()
	log.Debugw("refresh decision", "refresh", decision.Refresh, "reason", decision.Reason)

	refreshMissed := false
	if decision.Refresh {
		if remaining := s.policy.Remaining(usage); remaining <= 0 {
			log.Warnw("upstream quota exhausted, serving cached rate", "remaining", remaining)
			refreshMissed = true
		} else if record, err := s.refresh(ctx, apiKey, now); err != nil {
			log.Warnw("rate refresh failed, falling back to cache", "reason", decision.Reason, "error", err)
			refreshMissed = true
		} else {
			s.dispatchBackground(ctx, apiKey, record)
			return s.respond(record, usage, models.SourceNavasan, models.FreshnessFresh), nil
		}
	}

	if current == nil {
		log.Errorw("no exchange rate available", "refresh_attempted", decision.Refresh)
		return nil, ErrRateUnavailable
	}

	freshness := ClassifyFreshness(current.Age(now), s.cfg)
	source := models.SourceCached
	if refreshMissed && freshness == models.FreshnessStale {
		source = models.SourceFallback
	}

	return s.respond(current, usage, source, freshness), nil
}

// Wait blocks until background usage checks and event publishing have finished.
func (s *ExchangeRateService) Wait() {
	s.wg.Wait()
}

// latestRecord reads through the cache to PostgreSQL. Read errors count as no record.
// A cached record that is no longer fresh is checked against PostgreSQL, since a
// failed cache write can leave an older record in Redis.
func (s *ExchangeRateService) latestRecord(ctx context.Context, now time.Time) *models.RateRecord {
	var cached *models.RateRecord
	if s.rateCache != nil {
		record, err := s.rateCache.GetLatest(ctx)
		if err != nil {
			metrics.PersistenceErrorsTotal.WithLabelValues("rate_cache", "read").Inc()
			logger.FromContext(ctx).Warnw("failed to read cached rate record", "error", err)
		} else if record != nil && record.Age(now) < s.cfg.FreshThreshold {
			return record
		}
		cached = record
	}

	record, err := s.rateReader.GetLatest(ctx)
	if err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("rate_records", "read").Inc()
		logger.FromContext(ctx).Errorw("failed to read latest rate record", "error", err)
		return cached
	}
	if cached != nil && (record == nil || cached.FetchedAt.After(record.FetchedAt)) {
		return cached
	}
	if record != nil && s.rateCache != nil {
		if err := s.rateCache.SetLatest(ctx, record); err != nil {
			metrics.PersistenceErrorsTotal.WithLabelValues("rate_cache", "write").Inc()
			logger.FromContext(ctx).Warnw("failed to warm rate cache", "record_id", record.ID, "error", err)
		}
	}
	return record
}

func (s *ExchangeRateService) latestUsage(ctx context.Context) *models.UsageSnapshot {
	usage, err := s.usageReader.GetLatest(ctx)
	if err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("usage_snapshots", "read").Inc()
		logger.FromContext(ctx).Warnw("failed to read usage snapshot, assuming full quota", "error", err)
		return nil
	}
	if usage != nil {
		metrics.QuotaRemaining.Set(float64(s.policy.Remaining(usage)))
	}
	return usage
}

// refresh fetches a new rate and persists it. Only the fetch can fail the refresh;
// storage errors are logged because the caller already has data to return.
func (s *ExchangeRateService) refresh(ctx context.Context, apiKey string, now time.Time) (*models.RateRecord, error) {
	rate, err := s.fetcher.FetchRate(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	record, err := recordFromNavasan(rate, now)
	if err != nil {
		return nil, err
	}

	if err := s.rateWriter.Append(ctx, record); err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("rate_records", "write").Inc()
		logger.FromContext(ctx).Errorw("failed to persist rate record", "record_id", record.ID, "error", err)
	}
	if s.rateCache != nil {
		if err := s.rateCache.SetLatest(ctx, record); err != nil {
			metrics.PersistenceErrorsTotal.WithLabelValues("rate_cache", "write").Inc()
			logger.FromContext(ctx).Warnw("failed to cache rate record", "record_id", record.ID, "error", err)
		}
	}

	logger.FromContext(ctx).Infow("exchange rate refreshed", "record_id", record.ID, "value", record.RateValue)
	return record, nil
}

// dispatchBackground runs the usage check and event publishing without
// holding up the response. Failures are logged and dropped.
func (s *ExchangeRateService) dispatchBackground(ctx context.Context, apiKey string, record *models.RateRecord) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.backgroundTimeout)
		defer cancel()

		s.refreshUsage(bctx, apiKey)
		s.publishRefreshed(bctx, record)
	}()
}

func (s *ExchangeRateService) refreshUsage(ctx context.Context, apiKey string) {
	report, err := s.fetcher.FetchUsage(ctx, apiKey)
	if err != nil {
		logger.FromContext(ctx).Warnw("failed to fetch upstream usage", "error", err)
		return
	}

	snapshot, err := snapshotFromNavasan(report, s.cfg.MonthlyLimit, s.now())
	if err != nil {
		logger.FromContext(ctx).Warnw("upstream usage report is malformed", "report", report, "error", err)
		return
	}

	if err := s.usageWriter.Append(ctx, snapshot); err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("usage_snapshots", "write").Inc()
		logger.FromContext(ctx).Errorw("failed to persist usage snapshot", "error", err)
		return
	}

	metrics.QuotaRemaining.Set(float64(s.policy.Remaining(snapshot)))
	logger.FromContext(ctx).Infow("upstream usage recorded",
		"monthly", snapshot.MonthlyUsage,
		"daily", snapshot.DailyUsage,
		"remaining", s.policy.Remaining(snapshot),
	)
}

// publishRefreshed publishes a rate-refreshed event to Kafka.
func (s *ExchangeRateService) publishRefreshed(ctx context.Context, record *models.RateRecord) {
	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Debugw("Kafka writer not configured, skipping publishing", "record_id", record.ID)
		return
	}

	event := models.RateRefreshedEvent{
		RecordID:  record.ID.String(),
		Value:     record.RateValue,
		Change:    record.ChangeValue.InexactFloat64(),
		FetchedAt: record.FetchedAt.Unix(),
		Source:    models.SourceNavasan,
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal rate event for Kafka", "record_id", record.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RecordID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish rate event to Kafka", "record_id", record.ID, "error", err)
		return
	}
	logger.FromContext(ctx).Infow("Rate event published to Kafka", "record_id", record.ID)
}

func (s *ExchangeRateService) respond(
	record *models.RateRecord,
	usage *models.UsageSnapshot,
	source models.Source,
	freshness models.Freshness,
) *models.ExchangeRateResponse {
	metrics.RatesServedTotal.WithLabelValues(string(source), string(freshness)).Inc()

	resp := &models.ExchangeRateResponse{
		USD: models.USDRate{
			Value:     strconv.FormatInt(record.RateValue, 10),
			Change:    record.ChangeValue.InexactFloat64(),
			Timestamp: lo.FromPtr(record.ProviderTimestamp),
			Date:      lo.FromPtr(record.ProviderDate),
		},
		Meta: models.ExchangeRateMeta{
			FetchedAt: record.FetchedAt.UTC(),
			Freshness: freshness,
			Source:    source,
		},
	}
	if usage != nil {
		resp.Meta.Usage = &models.UsageMeta{
			Monthly:   usage.MonthlyUsage,
			Remaining: max(s.policy.Remaining(usage), 0),
			Limit:     s.cfg.MonthlyLimit,
		}
	}
	return resp
}

// recordFromNavasan converts an upstream payload into a new rate record.
func recordFromNavasan(rate *models.NavasanRate, fetchedAt time.Time) (*models.RateRecord, error) {
	if rate == nil || rate.USD == nil {
		return nil, errors.New("empty navasan rate")
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rate.USD.Value), ",", ""))
	if err != nil {
		return nil, fmt.Errorf("parsing rate value %q: %w", rate.USD.Value, err)
	}
	if value.GreaterThan(maxRateValue) {
		return nil, fmt.Errorf("rate value %q out of range", rate.USD.Value)
	}
	rateValue := value.IntPart()
	if rateValue <= 0 {
		return nil, fmt.Errorf("non-positive rate value %q", rate.USD.Value)
	}

	change := decimal.Zero
	if rate.USD.Change != "" {
		if change, err = decimal.NewFromString(rate.USD.Change.String()); err != nil {
			return nil, fmt.Errorf("parsing rate change %q: %w", rate.USD.Change, err)
		}
	}

	return &models.RateRecord{
		ID:                uuid.New(),
		RateValue:         rateValue,
		ChangeValue:       change,
		ProviderTimestamp: lo.EmptyableToPtr(rate.USD.Timestamp),
		ProviderDate:      lo.EmptyableToPtr(rate.USD.Date),
		FetchedAt:         fetchedAt,
	}, nil
}

// snapshotFromNavasan converts an upstream usage report into a snapshot.
func snapshotFromNavasan(report *models.NavasanUsage, limit int, checkedAt time.Time) (*models.UsageSnapshot, error) {
	monthly, err := models.ParseCounter(report.MonthlyUsage)
	if err != nil {
		return nil, fmt.Errorf("monthly_usage: %w", err)
	}
	daily, err := models.ParseCounter(report.DailyUsage)
	if err != nil {
		return nil, fmt.Errorf("daily_usage: %w", err)
	}
	hourly, err := models.ParseCounter(report.HourlyUsage)
	if err != nil {
		return nil, fmt.Errorf("hourly_usage: %w", err)
	}

	return &models.UsageSnapshot{
		MonthlyUsage: monthly,
		DailyUsage:   daily,
		HourlyUsage:  hourly,
		MonthlyLimit: limit,
		CheckedAt:    checkedAt,
	}, nil
}
