package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-exchange-rate/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rate/internal/models"
)

// RateRecordReadRepository reads rate records from PostgreSQL.
type RateRecordReadRepository struct {
	db *sqlx.DB
}

func NewRateRecordReadRepository(db *sqlx.DB) *RateRecordReadRepository {
	return &RateRecordReadRepository{db: db}
}

// GetLatest returns the most recently fetched record, or nil if none was stored yet.
func (r *RateRecordReadRepository) GetLatest(ctx context.Context) (*models.RateRecord, error) {
	const query = `
		SELECT id, rate_value, change_value, provider_timestamp, provider_date, fetched_at
		FROM rate_records
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	var record models.RateRecord
	err := r.db.GetContext(ctx, &record, query)

	logger.Log.Debugw(
		"sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", record.ID,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// RateRecordWriteRepository appends rate records to PostgreSQL.
type RateRecordWriteRepository struct {
	db *sqlx.DB
}

func NewRateRecordWriteRepository(db *sqlx.DB) *RateRecordWriteRepository {
	return &RateRecordWriteRepository{db: db}
}

// Append inserts a new record. Existing rows are never updated.
// A zero ID is replaced with a fresh UUID.
func (r *RateRecordWriteRepository) Append(ctx context.Context, record *models.RateRecord) error {
	const query = `
		INSERT INTO rate_records (id, rate_value, change_value, provider_timestamp, provider_date, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	args := []any{
		record.ID,
		record.RateValue,
		record.ChangeValue,
		record.ProviderTimestamp,
		record.ProviderDate,
		record.FetchedAt,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw(
		"sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
