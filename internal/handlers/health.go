package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-exchange-rate/internal/logger"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// HealthResponse lists the state of each dependency
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status
	// default: ok
	Status string `json:"status"`

	// Per dependency status
	Checks map[string]string `json:"checks,omitempty"`
}

// NewHealthHandler runs every check with a short timeout.
// A failed required check turns the response into 503. A failed optional
// check is reported as degraded while the endpoint stays 200.
func NewHealthHandler(required, optional map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(required)+len(optional))}
		status := http.StatusOK

		for name, check := range optional {
			if !runCheck(ctx, resp.Checks, name, check) {
				resp.Status = "degraded"
			}
		}
		for name, check := range required {
			if !runCheck(ctx, resp.Checks, name, check) {
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func runCheck(ctx context.Context, results map[string]string, name string, check HealthCheck) bool {
	if err := check(ctx); err != nil {
		logger.FromContext(ctx).Warnw("health check failed", "check", name, "error", err)
		results[name] = "unavailable"
		return false
	}
	results[name] = "ok"
	return true
}

// RegisterHealthHandler registers the liveness route.
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/healthz", h)
}
