package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "gw_exchange_rate"

// Upstream and cache Prometheus metrics.
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of calls to the rate provider",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Rate provider call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	RefreshDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_decisions_total",
			Help:      "Refresh policy decisions by reason",
		},
		[]string{"reason", "refresh"},
	)

	RatesServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rates_served_total",
			Help:      "Rates returned to callers by source and freshness",
		},
		[]string{"source", "freshness"},
	)

	PersistenceErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_errors_total",
			Help:      "Swallowed storage errors",
		},
		[]string{"store", "op"},
	)

	QuotaRemaining = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quota_remaining",
			Help:      "Monthly upstream calls left according to the latest usage snapshot",
		},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		RefreshDecisionsTotal,
		RatesServedTotal,
		PersistenceErrorsTotal,
		QuotaRemaining,
	)
}
