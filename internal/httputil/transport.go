// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Transport issues rate-limited GET requests with bounded retries.
// Connection errors, timeouts, and HTTP 5xx are retried with
// exponential backoff (RetryBaseDelay * 2^attempt); HTTP 4xx fails
// immediately. After the attempt budget is spent the call fails with a
// *types.TransportError carrying the last status or error.
type Transport struct {
	client  *http.Client
	limiter *RateLimiter
	cfg     types.TransportConfig
}

// NewTransport builds a Transport from the given config. The embedded
// http.Client enforces the per-request timeout.
func NewTransport(cfg types.TransportConfig) *Transport {
	return &Transport{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: NewRateLimiter(cfg.RateLimitDelay),
		cfg:     cfg,
	}
}

// Get fetches url and returns the response body. It holds the rate
// limiter for the whole logical request so that every outbound attempt
// (including retries) respects the pacing interval.
func (t *Transport) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", t.cfg.UserAgent)

	t.limiter.Lock()
	defer t.limiter.Unlock()

	maxAttempts := t.cfg.MaxRetries
	if maxAttempts <= 0 {
		maxAttempts = types.DefaultMaxRetries
	}

	var lastStatus int
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if err := t.backoff(ctx, attempt-1); err != nil {
				return nil, err
			}
		}
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := t.client.Do(req.Clone(ctx))
		t.limiter.Mark()

		if err != nil {
			// Caller cancellation is not a transport failure.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastStatus, lastErr = 0, err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastStatus, lastErr = 0, readErr
				continue
			}
			return body, nil
		case resp.StatusCode >= 500:
			lastStatus, lastErr = resp.StatusCode, nil
		default:
			// 4xx and other statuses are not retryable.
			return nil, &types.TransportError{StatusCode: resp.StatusCode, Attempts: attempt + 1}
		}
	}

	return nil, &types.TransportError{StatusCode: lastStatus, Attempts: maxAttempts, Err: lastErr}
}

// backoff sleeps RetryBaseDelay * 2^attempt, honoring cancellation.
func (t *Transport) backoff(ctx context.Context, attempt int) error {
	base := t.cfg.RetryBaseDelay
	if base <= 0 {
		base = types.DefaultRetryBaseDelay
	}
	delay := base * time.Duration(1<<uint(attempt))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
