package models

import "time"

// USDRate is the rate payload returned to callers.
// swagger:model USDRate
type USDRate struct {
	// Toman per 1 USD
	Value string `json:"value" example:"585000"`
	// Delta from the provider's previous value
	Change float64 `json:"change" example:"-1500"`
	// Provider timestamp (unix seconds)
	Timestamp int64 `json:"timestamp" example:"1760781600"`
	// Provider date
	Date string `json:"date" example:"1404-07-26 14:30:00"`
}

// UsageMeta summarises upstream quota consumption.
// swagger:model UsageMeta
type UsageMeta struct {
	Monthly   int `json:"monthly" example:"118"`
	Remaining int `json:"remaining" example:"2"`
	Limit     int `json:"limit" example:"120"`
}

// ExchangeRateMeta describes how the served rate was obtained.
// swagger:model ExchangeRateMeta
type ExchangeRateMeta struct {
	FetchedAt time.Time  `json:"fetchedAt" example:"2026-10-18T10:00:00Z"`
	Freshness Freshness  `json:"freshness" example:"fresh"`
	Source    Source     `json:"source" example:"navasan"`
	Usage     *UsageMeta `json:"usage,omitempty"`
}

// ExchangeRateResponse represents a successful exchange rate response
// swagger:model ExchangeRateResponse
type ExchangeRateResponse struct {
	USD  USDRate          `json:"usd"`
	Meta ExchangeRateMeta `json:"_meta"`
}

// ExchangeRateErrorResponse represents an error response when no rate can be served
// swagger:model ExchangeRateErrorResponse
type ExchangeRateErrorResponse struct {
	// Error message
	// example: exchange rate unavailable
	Error string `json:"error"`
}
