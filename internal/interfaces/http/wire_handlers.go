package http

import (
	"qravy/internal/interfaces/http/handlers/health"
	menuHandlers "qravy/internal/interfaces/http/handlers/menu"
	"qravy/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	menuHandler     *menuHandlers.Handler
	categoryHandler *menuHandlers.CategoryVisibilityHandler
	healthHandler   *health.Handler
}

func newHandlers(ucs *allUseCases, checks map[string]health.Check, log logger.Interface) *allHandlers {
	return &allHandlers{
		menuHandler: menuHandlers.NewHandler(
			ucs.listMenuItemsUC,
			ucs.createMenuItemUC,
			ucs.updateMenuItemUC,
			ucs.deleteMenuItemUC,
			ucs.bulkAvailabilityUC,
			ucs.bulkDeleteUC,
			ucs.bulkRecategorizeUC,
			log,
		),
		categoryHandler: menuHandlers.NewCategoryVisibilityHandler(ucs.setCategoryVisUC, ucs.clearCategoryVisUC, log),
		healthHandler:   health.NewHandler(checks, log),
	}
}
