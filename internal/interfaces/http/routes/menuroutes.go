package routes

import (
	"github.com/gin-gonic/gin"

	"qravy/internal/domain/permission"
	menuhandlers "qravy/internal/interfaces/http/handlers/menu"
	"qravy/internal/interfaces/http/middleware"
)

type MenuRouteConfig struct {
	MenuHandler          *menuhandlers.Handler
	CategoryHandler      *menuhandlers.CategoryVisibilityHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// WriteLimiter is nil when per-tenant write limiting is disabled.
	WriteLimiter *middleware.TenantRateLimiter
}

func SetupMenuRoutes(engine *gin.Engine, config *MenuRouteConfig) {
	perm := config.PermissionMiddleware
	writes := []gin.HandlerFunc{}
	if config.WriteLimiter != nil {
		writes = append(writes, config.WriteLimiter.Limit())
	}
	guarded := func(resource, action string, h gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{perm.RequirePermission(resource, action)}
		if action != permission.ActionRead {
			chain = append(chain, writes...)
		}
		return append(chain, h)
	}

	items := engine.Group("/menu-items")
	items.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		items.GET("",
			guarded(permission.ResourceMenuItem, permission.ActionRead, config.MenuHandler.ListMenuItems)...)
		items.POST("",
			guarded(permission.ResourceMenuItem, permission.ActionWrite, config.MenuHandler.CreateMenuItem)...)

		// Bulk endpoints (must come BEFORE /:id to avoid conflicts)
		items.POST("/bulk/availability",
			guarded(permission.ResourceMenuItem, permission.ActionToggle, config.MenuHandler.BulkSetAvailability)...)
		items.POST("/bulk/delete",
			guarded(permission.ResourceMenuItem, permission.ActionWrite, config.MenuHandler.BulkDelete)...)
		items.POST("/bulk/category",
			guarded(permission.ResourceMenuItem, permission.ActionWrite, config.MenuHandler.BulkRecategorize)...)

		// Generic parameterized routes (must come LAST)
		items.POST("/:id",
			guarded(permission.ResourceMenuItem, permission.ActionWrite, config.MenuHandler.UpdateMenuItem)...)
		items.DELETE("/:id",
			guarded(permission.ResourceMenuItem, permission.ActionWrite, config.MenuHandler.DeleteMenuItem)...)
	}

	categories := engine.Group("/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.PUT("/:id/visibility",
			guarded(permission.ResourceCategory, permission.ActionWrite, config.CategoryHandler.SetVisibility)...)
		categories.DELETE("/:id/visibility",
			guarded(permission.ResourceCategory, permission.ActionWrite, config.CategoryHandler.ClearVisibility)...)
	}
}
