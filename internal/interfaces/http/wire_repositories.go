package http

import (
	"gorm.io/gorm"

	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/repository"
	"qravy/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	itemRepo            menu.MenuItemRepository
	categoryRepo        menu.CategoryRepository
	locationRepo        menu.LocationRepository
	itemOverlayRepo     menu.ItemOverlayRepository
	categoryOverlayRepo menu.CategoryOverlayRepository
	auditRepo           audit.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		itemRepo:            repository.NewMenuItemRepository(db, log),
		categoryRepo:        repository.NewCategoryRepository(db, log),
		locationRepo:        repository.NewLocationRepository(db, log),
		itemOverlayRepo:     repository.NewItemOverlayRepository(db, log),
		categoryOverlayRepo: repository.NewCategoryOverlayRepository(db, log),
		auditRepo:           repository.NewAuditLogRepository(db, log),
	}
}
