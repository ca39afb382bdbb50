package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"qravy/internal/domain/menu"
	"qravy/internal/shared/logger"
)

const (
	menuKeyPrefix  = "qravy:menu:"
	keyAll         = "all"
	defaultViewTTL = 5 * time.Minute
)

// RedisMenuViewCache stores rendered listings under a per-tenant version.
// Bumping the version orphans every listing of the tenant; orphans expire
// through their TTL. Redis errors are logged and treated as misses.
type RedisMenuViewCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisMenuViewCache creates a new Redis-based listing cache
func NewRedisMenuViewCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisMenuViewCache {
	if ttl <= 0 {
		ttl = defaultViewTTL
	}
	return &RedisMenuViewCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func versionKey(tenantID string) string {
	return fmt.Sprintf("%s%s:version", menuKeyPrefix, tenantID)
}

func viewKey(tenantID string, version int64, locationID string, channel *menu.Channel) string {
	loc := locationID
	if loc == "" {
		loc = keyAll
	}
	ch := keyAll
	if channel != nil {
		ch = channel.String()
	}
	return fmt.Sprintf("%s%s:%d:%s:%s", menuKeyPrefix, tenantID, version, loc, ch)
}

func (c *RedisMenuViewCache) version(ctx context.Context, tenantID string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(tenantID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Get returns the cached payload for the view, if any, and the tenant
// version it was looked up under. The version is -1 when it cannot be read.
func (c *RedisMenuViewCache) Get(ctx context.Context, tenantID, locationID string, channel *menu.Channel) ([]byte, int64, bool) {
	version, err := c.version(ctx, tenantID)
	if err != nil {
		c.logger.Warnw("failed to read menu cache version", "tenant_id", tenantID, "error", err)
		return nil, -1, false
	}

	payload, err := c.client.Get(ctx, viewKey(tenantID, version, locationID, channel)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, false
	}
	if err != nil {
		c.logger.Warnw("failed to read menu cache", "tenant_id", tenantID, "error", err)
		return nil, version, false
	}
	return payload, version, true
}

// Set stores payload under version, the value Get returned before the
// listing was loaded. A listing written after a concurrent Invalidate thus
// lands under the superseded version and is never read.
func (c *RedisMenuViewCache) Set(ctx context.Context, tenantID string, version int64, locationID string, channel *menu.Channel, payload []byte) {
	if version < 0 {
		return
	}
	if err := c.client.Set(ctx, viewKey(tenantID, version, locationID, channel), payload, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to write menu cache", "tenant_id", tenantID, "error", err)
	}
}

// Invalidate bumps the tenant version.
func (c *RedisMenuViewCache) Invalidate(ctx context.Context, tenantID string) {
	if err := c.client.Incr(ctx, versionKey(tenantID)).Err(); err != nil {
		c.logger.Warnw("failed to invalidate menu cache", "tenant_id", tenantID, "error", err)
	}
}

// NoopMenuViewCache is used when Redis is disabled.
type NoopMenuViewCache struct{}

func (NoopMenuViewCache) Get(context.Context, string, string, *menu.Channel) ([]byte, int64, bool) {
	return nil, -1, false
}

func (NoopMenuViewCache) Set(context.Context, string, int64, string, *menu.Channel, []byte) {}

func (NoopMenuViewCache) Invalidate(context.Context, string) {}
