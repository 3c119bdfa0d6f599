package services

import (
	"time"

	"github.com/sbilibin2017/gw-exchange-rate/internal/models"
)

// PolicyConfig holds the refresh and freshness tunables.
// Values are fixed at startup.
type PolicyConfig struct {
	MonthlyLimit          int           // Upstream calls allowed per month
	FreshThreshold        time.Duration // Below this age a record is fresh and never refreshed
	StaleThreshold        time.Duration // Above this age a refresh is forced
	ConservationThreshold int           // Remaining calls below which refreshes are rationed
	ConservationInterval  time.Duration // Minimum record age before refreshing while rationing
}

// DefaultPolicyConfig returns the production defaults.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		MonthlyLimit:          120,
		FreshThreshold:        time.Hour,
		StaleThreshold:        24 * time.Hour,
		ConservationThreshold: 5,
		ConservationInterval:  12 * time.Hour,
	}
}

// RefreshReason names the rule that produced a refresh decision.
type RefreshReason string

const (
	ReasonColdStart           RefreshReason = "cold_start"
	ReasonFresh               RefreshReason = "fresh"
	ReasonStale               RefreshReason = "stale"
	ReasonConserving          RefreshReason = "conserving"
	ReasonConservationElapsed RefreshReason = "conservation_elapsed"
	ReasonOpportunistic       RefreshReason = "opportunistic"
)

// RefreshDecision is the outcome of RefreshPolicy.Decide.
type RefreshDecision struct {
	Refresh bool
	Reason  RefreshReason
}

// RefreshPolicy decides whether an upstream call is worth spending quota on.
type RefreshPolicy struct {
	cfg PolicyConfig
}

// NewRefreshPolicy creates a policy with the given thresholds.
func NewRefreshPolicy(cfg PolicyConfig) *RefreshPolicy {
	return &RefreshPolicy{cfg: cfg}
}

// Decide applies the refresh rules in order:
// no record, fresh, stale, conservation under quota pressure, opportunistic.
func (p *RefreshPolicy) Decide(current *models.RateRecord, usage *models.UsageSnapshot, now time.Time) RefreshDecision {
	if current == nil {
		return RefreshDecision{Refresh: true, Reason: ReasonColdStart}
	}

	age := current.Age(now)
	if age < p.cfg.FreshThreshold {
		return RefreshDecision{Refresh: false, Reason: ReasonFresh}
	}
	// staleness outranks conservation
	if age > p.cfg.StaleThreshold {
		return RefreshDecision{Refresh: true, Reason: ReasonStale}
	}

	if usage != nil && p.Remaining(usage) < p.cfg.ConservationThreshold {
		if age >= p.cfg.ConservationInterval {
			return RefreshDecision{Refresh: true, Reason: ReasonConservationElapsed}
		}
		return RefreshDecision{Refresh: false, Reason: ReasonConserving}
	}

	return RefreshDecision{Refresh: true, Reason: ReasonOpportunistic}
}

// ShouldRefresh reports whether a new upstream call is warranted.
func (p *RefreshPolicy) ShouldRefresh(current *models.RateRecord, usage *models.UsageSnapshot, now time.Time) bool {
	return p.Decide(current, usage, now).Refresh
}

// Remaining estimates the calls left this month.
// Unknown usage is treated as a full quota.
func (p *RefreshPolicy) Remaining(usage *models.UsageSnapshot) int {
	if usage == nil {
		return p.cfg.MonthlyLimit
	}
	return p.cfg.MonthlyLimit - usage.MonthlyUsage
}

// ClassifyFreshness maps a record age to its freshness bucket.
func ClassifyFreshness(age time.Duration, cfg PolicyConfig) models.Freshness {
	switch {
	case age < cfg.FreshThreshold:
		return models.FreshnessFresh
	case age >= cfg.StaleThreshold:
		return models.FreshnessStale
	default:
		return models.FreshnessCached
	}
}
