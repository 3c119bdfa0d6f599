package models

// Freshness is the age bucket of a served rate.
type Freshness string

const (
	FreshnessFresh  Freshness = "fresh"
	FreshnessCached Freshness = "cached"
	FreshnessStale  Freshness = "stale"
)

// Source tells callers where the served rate came from.
type Source string

const (
	SourceNavasan  Source = "navasan"
	SourceCached   Source = "cached"
	SourceFallback Source = "fallback"
)
