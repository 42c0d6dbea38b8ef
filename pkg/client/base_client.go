package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"dashboard-aggregator/internal/metrics"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BaseClient wraps outbound HTTP with a per-source circuit breaker. Failed or
// non-2xx responses surface as errors; callers decide whether that becomes a
// placeholder or a visible error.
type BaseClient struct {
	name           string
	client         HTTPClient
	logger         *zap.Logger
	circuitBreaker *gobreaker.CircuitBreaker
}

type ClientConfig struct {
	Timeout        time.Duration
	BreakerTimeout time.Duration
}

func NewBaseClient(name string, config ClientConfig, logger *zap.Logger) *BaseClient {
	httpClient := &http.Client{
		Timeout: config.Timeout,
	}

	breakerSettings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &BaseClient{
		name:           name,
		client:         httpClient,
		logger:         logger,
		circuitBreaker: gobreaker.NewCircuitBreaker(breakerSettings),
	}
}

// Get fetches a URL and returns the response body. Optional headers are set
// on the request (used for header-authenticated upstreams).
func (c *BaseClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return c.execute(req)
}

// GetJSON fetches a URL and decodes the JSON body into out. A decode failure
// is reported the same way as an unavailable upstream.
func (c *BaseClient) GetJSON(ctx context.Context, url string, out interface{}) error {
	body, err := c.Get(ctx, url, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// PostJSON sends a JSON payload and decodes the JSON response into out.
func (c *BaseClient) PostJSON(ctx context.Context, url string, payload, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("creating request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.execute(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *BaseClient) execute(req *http.Request) ([]byte, error) {
	start := time.Now()

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.do(req)
	})

	metrics.SourceFetchDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SourceFetches.WithLabelValues(c.name, metrics.StatusFailure).Inc()
		return nil, err
	}

	metrics.SourceFetches.WithLabelValues(c.name, metrics.StatusSuccess).Inc()
	return result.([]byte), nil
}

func (c *BaseClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			zap.String("client", c.name),
			zap.String("url", req.URL.Redacted()),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Upstream returned error status",
			zap.String("client", c.name),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	c.logger.Debug("Request successful",
		zap.String("client", c.name),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_size", len(body)))

	return body, nil
}
