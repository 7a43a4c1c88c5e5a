// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the rate-limited, retrying HTTP transport
// used for all arXiv API traffic.
package httputil

import (
	"context"
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between consecutive requests
// from one client instance. The last-request timestamp is shared,
// mutex-guarded state: only one request may be in flight or pending at
// a time, so the pacing holds globally even under concurrent callers.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time

	// now is replaceable in tests.
	now func() time.Time
}

// NewRateLimiter returns a limiter with the given minimum interval.
// A non-positive interval disables pacing.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{interval: interval, now: time.Now}
}

// Lock serializes callers. Hold the lock for the whole logical request
// (all retry attempts) so pacing is measured between outbound requests,
// not between callers.
func (l *RateLimiter) Lock() { l.mu.Lock() }

// Unlock releases the limiter for the next caller.
func (l *RateLimiter) Unlock() { l.mu.Unlock() }

// Wait blocks until at least the configured interval has elapsed since
// the previous Mark. It returns early with ctx.Err() if the context is
// cancelled during the wait. The caller must hold the lock.
func (l *RateLimiter) Wait(ctx context.Context) error {
	if l.interval <= 0 || l.last.IsZero() {
		return ctx.Err()
	}
	remaining := l.interval - l.now().Sub(l.last)
	if remaining <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(remaining):
		return nil
	}
}

// Mark records that a request just completed. The next Wait measures
// its window from this instant. The caller must hold the lock.
func (l *RateLimiter) Mark() {
	l.last = l.now()
}
