package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/domain/menu"
	"qravy/internal/shared/logger"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return mr, client
}

func TestMenuViewCacheRoundTrip(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisMenuViewCache(client, time.Minute, logger.NewLogger())
	ctx := context.Background()
	online := menu.ChannelOnline

	_, version, ok := c.Get(ctx, "tnt_a", "loc_1", &online)
	assert.False(t, ok)
	assert.Equal(t, int64(0), version)

	c.Set(ctx, "tnt_a", version, "loc_1", &online, []byte(`[1]`))
	c.Set(ctx, "tnt_a", version, "", nil, []byte(`[2]`))

	got, _, ok := c.Get(ctx, "tnt_a", "loc_1", &online)
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(got))

	got, _, ok = c.Get(ctx, "tnt_a", "", nil)
	require.True(t, ok)
	assert.Equal(t, `[2]`, string(got))

	assert.True(t, mr.Exists("qravy:menu:tnt_a:0:loc_1:online"))
	assert.True(t, mr.Exists("qravy:menu:tnt_a:0:all:all"))
}

func TestMenuViewCacheInvalidate(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisMenuViewCache(client, time.Minute, logger.NewLogger())
	ctx := context.Background()

	c.Set(ctx, "tnt_a", 0, "", nil, []byte(`a`))
	c.Set(ctx, "tnt_b", 0, "", nil, []byte(`b`))

	c.Invalidate(ctx, "tnt_a")

	_, version, ok := c.Get(ctx, "tnt_a", "", nil)
	assert.False(t, ok)
	assert.Equal(t, int64(1), version)

	got, version, ok := c.Get(ctx, "tnt_b", "", nil)
	require.True(t, ok)
	assert.Equal(t, `b`, string(got))
	assert.Equal(t, int64(0), version)
}

func TestMenuViewCacheSetKeepsLookupVersion(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisMenuViewCache(client, time.Minute, logger.NewLogger())
	ctx := context.Background()

	_, version, ok := c.Get(ctx, "tnt_a", "", nil)
	require.False(t, ok)

	// A mutation lands while the listing is being loaded.
	c.Invalidate(ctx, "tnt_a")
	c.Set(ctx, "tnt_a", version, "", nil, []byte(`stale`))

	_, current, ok := c.Get(ctx, "tnt_a", "", nil)
	assert.False(t, ok)
	assert.Equal(t, version+1, current)
	assert.True(t, mr.Exists("qravy:menu:tnt_a:0:all:all"))
	assert.False(t, mr.Exists("qravy:menu:tnt_a:1:all:all"))

	c.Set(ctx, "tnt_a", current, "", nil, []byte(`fresh`))
	got, _, ok := c.Get(ctx, "tnt_a", "", nil)
	require.True(t, ok)
	assert.Equal(t, `fresh`, string(got))
}

func TestMenuViewCacheIgnoresRedisFailure(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisMenuViewCache(client, time.Minute, logger.NewLogger())
	ctx := context.Background()

	mr.Close()

	_, version, ok := c.Get(ctx, "tnt_a", "", nil)
	assert.False(t, ok)
	assert.Equal(t, int64(-1), version)
	c.Set(ctx, "tnt_a", version, "", nil, []byte(`a`))
	c.Set(ctx, "tnt_a", 0, "", nil, []byte(`a`))
	c.Invalidate(ctx, "tnt_a")
}
