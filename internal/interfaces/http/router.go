package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"qravy/internal/infrastructure/config"
	"qravy/internal/interfaces/http/middleware"
	"qravy/internal/interfaces/http/routes"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	utils.RegisterGinValidators()

	c, err := NewContainer(db, redisClient, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/healthz", r.hdlrs.healthHandler.Healthz)

	routes.SetupMenuRoutes(r.engine, &routes.MenuRouteConfig{
		MenuHandler:          r.hdlrs.menuHandler,
		CategoryHandler:      r.hdlrs.categoryHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		WriteLimiter:         r.writeLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
