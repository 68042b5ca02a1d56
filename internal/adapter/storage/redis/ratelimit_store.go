package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "mss:ratelimit:"

// RateLimitStore keeps fixed-window counters in Redis. It backs both the
// per-route HTTP limits and the PIN/OTP attempt budgets.
type RateLimitStore struct {
	client *goredis.Client
	now    func() time.Time
}

// RateLimitOption customises a RateLimitStore.
type RateLimitOption func(*RateLimitStore)

// WithClock overrides the wall clock used to pick the current window.
func WithClock(now func() time.Time) RateLimitOption {
	return func(s *RateLimitStore) { s.now = now }
}

// NewRateLimitStore returns a store on client using the wall clock unless
// WithClock overrides it.
func NewRateLimitStore(client *goredis.Client, opts ...RateLimitOption) *RateLimitStore {
	s := &RateLimitStore{client: client, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RateLimitResult is the state of one window after counting a hit.
type RateLimitResult struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	ResetAt    int64 // Unix seconds
	RetryAfter time.Duration
}

// Allow counts one hit against key in the window containing now.
// INCR and EXPIRE run in one MULTI so a counter never outlives its window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error) {
	if window < time.Second {
		return nil, fmt.Errorf("rate limit window %s is shorter than one second", window)
	}

	now := s.now()
	secs := int64(window / time.Second)
	windowID := now.Unix() / secs
	redisKey := fmt.Sprintf("%s%s:%d", rateLimitPrefix, key, windowID)

	var incr *goredis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, window+time.Second)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}
	count := incr.Val()

	resetAt := (windowID + 1) * secs
	res := &RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		ResetAt:   resetAt,
	}
	if !res.Allowed {
		res.RetryAfter = time.Unix(resetAt, 0).Sub(now)
	}
	return res, nil
}
