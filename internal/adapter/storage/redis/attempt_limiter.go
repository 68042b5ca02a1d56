package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AttemptLimiter implements ports.AttemptLimiter on top of the fixed-window
// rate limit counters. Every guess counts, right or wrong.
type AttemptLimiter struct {
	store  *RateLimitStore
	limit  int64
	window time.Duration
}

// NewAttemptLimiter allows limit guesses per scope and merchant within window.
func NewAttemptLimiter(store *RateLimitStore, limit int64, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{store: store, limit: limit, window: window}
}

// Allow consumes one attempt and reports whether it was within the limit.
func (l *AttemptLimiter) Allow(ctx context.Context, scope string, merchantID uuid.UUID) (bool, error) {
	res, err := l.store.Allow(ctx, "attempts:"+scope+":"+merchantID.String(), l.limit, l.window)
	if err != nil {
		return false, err
	}
	return res.Allowed, nil
}
