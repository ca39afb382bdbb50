package migration

import (
	"qravy/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.LocationModel{},
		&models.CategoryModel{},
		&models.MenuItemModel{},
		&models.ItemAvailabilityOverlayModel{},
		&models.CategoryVisibilityOverlayModel{},
		&models.AuditLogModel{},
	}
}
