package ratelimit

import (
	"context"
	"time"
)

// Limit caps requests per sliding window. A non-positive Requests disables
// the limit.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it fits the limit.
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Reset(ctx context.Context, key string) error
}
