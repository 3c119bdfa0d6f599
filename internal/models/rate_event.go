package models

// RateRefreshedEvent is published after a successful upstream refresh.
type RateRefreshedEvent struct {
	RecordID  string  `json:"record_id"`
	Value     int64   `json:"value"`
	Change    float64 `json:"change"`
	FetchedAt int64   `json:"fetched_at"` // Unix seconds
	Source    Source  `json:"source"`
}
