package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateRecord is a USD/Toman rate obtained from the upstream provider.
// Records are append-only; the one with the latest FetchedAt is current.
type RateRecord struct {
	ID                uuid.UUID       `json:"id" db:"id"`                                 // Primary key
	RateValue         int64           `json:"rate_value" db:"rate_value"`                 // Toman per 1 USD
	ChangeValue       decimal.Decimal `json:"change_value" db:"change_value"`             // Provider-reported delta
	ProviderTimestamp *int64          `json:"provider_timestamp" db:"provider_timestamp"` // Pass-through, informational
	ProviderDate      *string         `json:"provider_date" db:"provider_date"`           // Pass-through, informational
	FetchedAt         time.Time       `json:"fetched_at" db:"fetched_at"`                 // When this process obtained the value
}

// Age returns how long ago the record was fetched relative to now.
func (r *RateRecord) Age(now time.Time) time.Duration {
	return now.Sub(r.FetchedAt)
}
