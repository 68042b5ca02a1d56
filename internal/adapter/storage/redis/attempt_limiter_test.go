package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptLimiter_Allow(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	limiter := NewAttemptLimiter(NewRateLimitStore(client), 3, time.Hour)
	ctx := context.Background()
	merchantID := uuid.New()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "pin", merchantID)
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should be allowed", i+1)
	}

	ok, err := limiter.Allow(ctx, "pin", merchantID)
	require.NoError(t, err)
	assert.False(t, ok, "fourth attempt should be blocked")
}

func TestAttemptLimiter_ScopesAndMerchantsAreIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	limiter := NewAttemptLimiter(NewRateLimitStore(client), 1, time.Hour)
	ctx := context.Background()
	m1, m2 := uuid.New(), uuid.New()

	ok, err := limiter.Allow(ctx, "pin", m1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "otp", m1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "pin", m2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "pin", m1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAttemptLimiter_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	limiter := NewAttemptLimiter(NewRateLimitStore(client), 1, time.Hour)
	s.Close()

	ok, err := limiter.Allow(context.Background(), "pin", uuid.New())
	assert.Error(t, err)
	assert.False(t, ok)
}
