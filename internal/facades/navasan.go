package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-exchange-rate/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rate/internal/metrics"
	"github.com/sbilibin2017/gw-exchange-rate/internal/models"
)

const (
	endpointLatest = "latest"
	endpointUsage  = "usage"

	// maxBodySize caps how much of an upstream response is read.
	maxBodySize = 1 << 20
)

var (
	// ErrUpstreamStatus is returned when the provider answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrEmptyRate is returned when the provider response carries no usd item.
	ErrEmptyRate = errors.New("upstream response has no usd rate")
)

// NavasanHTTPFacade calls the Navasan REST API.
type NavasanHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewNavasanHTTPFacade creates a facade with a bounded request timeout.
func NewNavasanHTTPFacade(baseURL string, timeout time.Duration) *NavasanHTTPFacade {
	return &NavasanHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchRate fetches the latest USD/Toman rate.
func (f *NavasanHTTPFacade) FetchRate(ctx context.Context, apiKey string) (*models.NavasanRate, error) {
	q := url.Values{}
	q.Set("item", "usd")
	q.Set("api_key", apiKey)

	var rate models.NavasanRate
	if err := f.get(ctx, endpointLatest, q, &rate); err != nil {
		return nil, err
	}
	if rate.USD == nil || rate.USD.Value == "" {
		return nil, ErrEmptyRate
	}

	return &rate, nil
}

// FetchUsage fetches the quota consumption reported by the provider.
func (f *NavasanHTTPFacade) FetchUsage(ctx context.Context, apiKey string) (*models.NavasanUsage, error) {
	q := url.Values{}
	q.Set("api_key", apiKey)

	var usage models.NavasanUsage
	if err := f.get(ctx, endpointUsage, q, &usage); err != nil {
		return nil, err
	}

	return &usage, nil
}

func (f *NavasanHTTPFacade) get(ctx context.Context, endpoint string, q url.Values, out any) (err error) {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
		if err != nil {
			logger.Log.Warnw("navasan request failed", "endpoint", endpoint, "status", status, "error", err)
		}
	}()

	u := fmt.Sprintf("%s/%s/?%s", f.baseURL, endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		// url.Error embeds the full URL including api_key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("calling navasan %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("reading navasan %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("navasan %s: %w: %d", endpoint, ErrUpstreamStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding navasan %s response: %w", endpoint, err)
	}

	return nil
}
