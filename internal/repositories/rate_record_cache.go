package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-exchange-rate/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rate/internal/models"
)

// LatestRateKey is the Redis hash holding the current USD/Toman record.
const LatestRateKey = "exchange_rate:usd:irt:latest"

// setIfNewer stores the record unless the cached one was fetched later.
// KEYS[1] hash key; ARGV[1] fetched_at (unix ms); ARGV[2] record JSON; ARGV[3] ttl (ms, 0 = none).
var setIfNewer = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'fetched_at')
if cur and tonumber(cur) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'fetched_at', ARGV[1], 'record', ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
return 1
`)

// RateRecordCacheRepository keeps the latest rate record in Redis in front of PostgreSQL.
type RateRecordCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached record
}

// NewRateRecordCacheRepository creates a new repository instance with the given TTL.
func NewRateRecordCacheRepository(client *redis.Client, expiration time.Duration) *RateRecordCacheRepository {
	return &RateRecordCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetLatest returns the cached record, or nil on a cache miss.
func (r *RateRecordCacheRepository) GetLatest(ctx context.Context) (*models.RateRecord, error) {
	val, err := r.client.HGet(ctx, LatestRateKey, "record").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("rate cache miss", "key", LatestRateKey)
			return nil, nil
		}
		logger.Log.Warnw("rate cache read failed", "key", LatestRateKey, "error", err)
		return nil, err
	}

	var record models.RateRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		logger.Log.Warnw("rate cache holds undecodable record", "key", LatestRateKey, "error", err)
		return nil, err
	}

	logger.Log.Debugw("rate cache hit", "key", LatestRateKey, "record_id", record.ID, "fetched_at", record.FetchedAt)
	return &record, nil
}

// SetLatest caches the record unless a newer one is already cached.
func (r *RateRecordCacheRepository) SetLatest(ctx context.Context, record *models.RateRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	stored, err := setIfNewer.Run(ctx, r.client, []string{LatestRateKey},
		record.FetchedAt.UnixMilli(), string(data), r.exp.Milliseconds(),
	).Int()

	logger.Log.Debugw("rate cache set",
		"key", LatestRateKey,
		"record_id", record.ID,
		"stored", stored == 1,
		"error", err,
	)

	return err
}
