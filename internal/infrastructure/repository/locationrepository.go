package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/mappers"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/db"
	"qravy/internal/shared/logger"
)

// LocationRepositoryImpl implements menu.LocationRepository.
type LocationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LocationMapper
	logger logger.Interface
}

// NewLocationRepository creates a new location repository instance.
func NewLocationRepository(gdb *gorm.DB, logger logger.Interface) menu.LocationRepository {
	return &LocationRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewLocationMapper(),
		logger: logger,
	}
}

// ListByTenant returns the tenant's locations ordered by name.
func (r *LocationRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]*menu.Location, error) {
	var rows []*models.LocationModel
	if err := r.db.WithContext(ctx).Scopes(db.Tenant(tenantID)).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list locations", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

// GetByID returns nil when the location does not exist for the tenant.
func (r *LocationRepositoryImpl) GetByID(ctx context.Context, tenantID, id string) (*menu.Location, error) {
	var row models.LocationModel
	if err := r.db.WithContext(ctx).Scopes(db.Tenant(tenantID)).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get location", "tenant_id", tenantID, "id", id, "error", err)
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return r.mapper.ToEntity(&row)
}
