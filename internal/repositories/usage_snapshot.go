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

// UsageReadRepository reads upstream quota observations.
type UsageReadRepository struct {
	db *sqlx.DB
}

func NewUsageReadRepository(db *sqlx.DB) *UsageReadRepository {
	return &UsageReadRepository{db: db}
}

// GetLatest returns the most recent usage snapshot, or nil if none exists.
func (r *UsageReadRepository) GetLatest(ctx context.Context) (*models.UsageSnapshot, error) {
	const query = `
		SELECT id, monthly_usage, daily_usage, hourly_usage, monthly_limit, checked_at
		FROM usage_snapshots
		ORDER BY checked_at DESC
		LIMIT 1
	`

	var snapshot models.UsageSnapshot
	err := r.db.GetContext(ctx, &snapshot, query)

	logger.Log.Debugw(
		"sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", snapshot,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}

// UsageWriteRepository appends upstream quota observations.
type UsageWriteRepository struct {
	db *sqlx.DB
}

func NewUsageWriteRepository(db *sqlx.DB) *UsageWriteRepository {
	return &UsageWriteRepository{db: db}
}

func (r *UsageWriteRepository) Append(ctx context.Context, snapshot *models.UsageSnapshot) error {
	const query = `
		INSERT INTO usage_snapshots (id, monthly_usage, daily_usage, hourly_usage, monthly_limit, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	args := []any{
		snapshot.ID,
		snapshot.MonthlyUsage,
		snapshot.DailyUsage,
		snapshot.HourlyUsage,
		snapshot.MonthlyLimit,
		snapshot.CheckedAt,
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
