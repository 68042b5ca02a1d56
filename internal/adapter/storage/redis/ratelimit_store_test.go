package redis_test

import (
	"context"
	"testing"
	"time"

	"merchant-settlement/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedStore(t *testing.T, now *time.Time) (*redis.RateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis.NewRateLimitStore(client, redis.WithClock(func() time.Time { return *now })), mr
}

func TestRateLimitStore_Allow(t *testing.T) {
	now := time.Unix(1_700_000_010, 0)
	store, mr := newClockedStore(t, &now)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		res, err := store.Allow(ctx, "m1:withdrawals", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "hit %d", i)
		assert.Equal(t, 3-i, res.Remaining)
		assert.Zero(t, res.RetryAfter)
	}

	res, err := store.Allow(ctx, "m1:withdrawals", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
	// Window [1_699_999_980, 1_700_000_040) ends 30s after now.
	assert.Equal(t, int64(1_700_000_040), res.ResetAt)
	assert.Equal(t, 30*time.Second, res.RetryAfter)

	key := "mss:ratelimit:m1:withdrawals:28333333"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 61*time.Second, mr.TTL(key))
}

func TestRateLimitStore_KeysAreIndependent(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store, _ := newClockedStore(t, &now)
	ctx := context.Background()

	_, err := store.Allow(ctx, "m1:pin", 1, time.Minute)
	require.NoError(t, err)

	res, err := store.Allow(ctx, "m2:pin", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(4), res.Remaining)
}

func TestRateLimitStore_NextWindowStartsFresh(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store, _ := newClockedStore(t, &now)
	ctx := context.Background()

	_, err := store.Allow(ctx, "m3:pin", 1, time.Minute)
	require.NoError(t, err)
	res, err := store.Allow(ctx, "m3:pin", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	now = now.Add(time.Minute)
	res, err = store.Allow(ctx, "m3:pin", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRateLimitStore_RejectsSubSecondWindow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store, _ := newClockedStore(t, &now)

	_, err := store.Allow(context.Background(), "m4:pin", 1, 500*time.Millisecond)
	assert.Error(t, err)
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	store, mr := newClockedStore(t, &now)
	mr.Close()

	_, err := store.Allow(context.Background(), "m5:pin", 1, time.Minute)
	assert.ErrorContains(t, err, "redis rate limit incr")
}
