package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"qravy/internal/application/menu/usecases"
	"qravy/internal/infrastructure/auth"
	"qravy/internal/infrastructure/cache"
	"qravy/internal/infrastructure/config"
	"qravy/internal/infrastructure/permission"
	"qravy/internal/infrastructure/ratelimit"
	"qravy/internal/interfaces/http/handlers/health"
	"qravy/internal/interfaces/http/middleware"
	"qravy/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and middlewares, and owns their shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	// redis is nil when the cache is disabled.
	redis *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	jwtSvc   *auth.JWTService
	enforcer *permission.Enforcer

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	writeLimiter         *middleware.TenantRateLimiter
}

// NewContainer wires every component. redisClient may be nil, in which case
// listings are not cached and writes are not rate limited.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	// Section 1: Infrastructure - repositories, cache, auth
	c.repos = newRepositories(db, log)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	var viewCache usecases.MenuViewCache = cache.NoopMenuViewCache{}
	if redisClient != nil {
		viewCache = cache.NewRedisMenuViewCache(redisClient, cfg.Redis.MenuCacheTTL(), log)
	}

	// Section 2: Use cases and handlers
	c.ucs = newUseCases(c.repos, viewCache, log)
	c.hdlrs = newHandlers(c.ucs, c.healthChecks(), log)

	// Section 3: Middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)
	if redisClient != nil && cfg.Redis.WriteLimitPerMinute > 0 {
		c.writeLimiter = middleware.NewTenantRateLimiter(
			ratelimit.NewRedisRateLimiter(redisClient),
			ratelimit.Limit{Requests: cfg.Redis.WriteLimitPerMinute, Window: time.Minute},
			log,
		)
	}

	return c, nil
}

func (c *Container) healthChecks() map[string]health.Check {
	checks := map[string]health.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}

// Shutdown releases the Redis connection. The database is closed by its owner.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
