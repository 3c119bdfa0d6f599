package models

import (
	"time"

	"github.com/google/uuid"
)

// UsageSnapshot is one observation of the upstream quota consumption.
// Counters are reported by the provider and may lag behind reality.
type UsageSnapshot struct {
	ID           uuid.UUID `json:"id" db:"id"`
	MonthlyUsage int       `json:"monthly_usage" db:"monthly_usage"`
	DailyUsage   int       `json:"daily_usage" db:"daily_usage"`
	HourlyUsage  int       `json:"hourly_usage" db:"hourly_usage"`
	MonthlyLimit int       `json:"monthly_limit" db:"monthly_limit"`
	CheckedAt    time.Time `json:"checked_at" db:"checked_at"`
}
