package handlers

//go:generate mockgen -source=exchange_rate.go -destination=mock_exchange_rate.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-exchange-rate/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rate/internal/models"
	"github.com/sbilibin2017/gw-exchange-rate/internal/services"
)

const (
	freshMaxAge = 3600
	staleMaxAge = 300
)

// ExchangeRateGetter defines the interface that the service must implement.
type ExchangeRateGetter interface {
	GetExchangeRate(ctx context.Context, apiKey string) (*models.ExchangeRateResponse, error)
}

// NewGetExchangeRateHandler returns an HTTP handler for the current USD/Toman rate.
// @Summary Get USD exchange rate
// @Description Returns the latest USD/Toman rate with freshness and quota metadata. Upstream is called only when the refresh policy allows it.
// @Tags exchange
// @Produce json
// @Success 200 {object} models.ExchangeRateResponse "Exchange rate"
// @Failure 500 {object} models.ExchangeRateErrorResponse "Service is not configured"
// @Failure 503 {object} models.ExchangeRateErrorResponse "Exchange rate unavailable"
// @Router /exchange-rate [get]
func NewGetExchangeRateHandler(svc ExchangeRateGetter, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		resp, err := svc.GetExchangeRate(r.Context(), apiKey)
		if err != nil {
			status, msg := http.StatusInternalServerError, "internal server error"
			switch {
			case errors.Is(err, services.ErrRateUnavailable):
				status, msg = http.StatusServiceUnavailable, "exchange rate unavailable"
			case errors.Is(err, services.ErrMissingAPIKey):
				msg = "exchange rate service is not configured"
			}
			logger.FromContext(r.Context()).Errorw("exchange rate request failed", "status", status, "error", err)
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(models.ExchangeRateErrorResponse{Error: msg})
			return
		}

		w.Header().Set("Cache-Control", cacheControl(resp.Meta.Freshness))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// cacheControl lets edge caches keep fresh rates for an hour and anything older for five minutes.
func cacheControl(freshness models.Freshness) string {
	maxAge := staleMaxAge
	if freshness == models.FreshnessFresh {
		maxAge = freshMaxAge
	}
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", maxAge, 2*maxAge)
}

// RegisterGetExchangeRateHandler registers the exchange rate route.
func RegisterGetExchangeRateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/exchange-rate", h)
}
