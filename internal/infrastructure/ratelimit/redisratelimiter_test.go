package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	limit := Limit{Requests: 5, Window: time.Minute}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "tnt_A", limit)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "tnt_A", limit)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "tnt_B", limit)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are limited independently")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	limit := Limit{Requests: 1, Window: time.Minute}

	allowed, err := limiter.Allow(ctx, "tnt_A", limit)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "tnt_A", limit)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "tnt_A"))

	allowed, err = limiter.Allow(ctx, "tnt_A", limit)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_DisabledLimit(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	allowed, err := limiter.Allow(context.Background(), "tnt_A", Limit{})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_RedisDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "tnt_A", Limit{Requests: 1, Window: time.Minute})
	assert.Error(t, err)
}
