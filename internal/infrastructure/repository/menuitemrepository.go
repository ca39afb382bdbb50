package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/mappers"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/db"
	apperrors "qravy/internal/shared/errors"
	"qravy/internal/shared/logger"
)

// MenuItemRepositoryImpl implements menu.MenuItemRepository.
type MenuItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MenuItemMapper
	logger logger.Interface
}

// NewMenuItemRepository creates a new menu item repository instance.
func NewMenuItemRepository(gdb *gorm.DB, logger logger.Interface) menu.MenuItemRepository {
	return &MenuItemRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewMenuItemMapper(),
		logger: logger,
	}
}

// Create inserts a new menu item.
func (r *MenuItemRepositoryImpl) Create(ctx context.Context, item *menu.MenuItem) error {
	model := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("menu item already exists", item.ID())
		}
		r.logger.Errorw("failed to create menu item", "id", item.ID(), "error", err)
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Infow("menu item created", "id", model.ID, "tenant_id", model.TenantID, "scope", model.Scope)
	return nil
}

// Update writes the item's mutable fields.
func (r *MenuItemRepositoryImpl) Update(ctx context.Context, item *menu.MenuItem) error {
	model := r.mapper.ToModel(item)
	result := r.db.WithContext(ctx).Model(&models.MenuItemModel{}).
		Scopes(db.Tenant(model.TenantID)).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":            model.Name,
			"description":     model.Description,
			"price":           model.Price,
			"category_id":     model.CategoryID,
			"visible_dine_in": model.VisibleDineIn,
			"visible_online":  model.VisibleOnline,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update menu item", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update menu item: %w", result.Error)
	}
	return nil
}

// GetByID returns nil when the item does not exist for the tenant.
func (r *MenuItemRepositoryImpl) GetByID(ctx context.Context, tenantID, id string) (*menu.MenuItem, error) {
	var row models.MenuItemModel
	if err := r.db.WithContext(ctx).Scopes(db.Tenant(tenantID)).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get menu item", "tenant_id", tenantID, "id", id, "error", err)
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return r.mapper.ToEntity(&row)
}

// GetByIDs returns the tenant's items among ids. Unknown ids are skipped.
func (r *MenuItemRepositoryImpl) GetByIDs(ctx context.Context, tenantID string, ids []string) ([]*menu.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []*models.MenuItemModel
	for _, chunk := range db.Chunk(ids, constants.DefaultBatchSize) {
		var part []*models.MenuItemModel
		if err := r.db.WithContext(ctx).Scopes(db.Tenant(tenantID)).Where("id IN ?", chunk).Order("created_at ASC, id ASC").Find(&part).Error; err != nil {
			r.logger.Errorw("failed to get menu items", "tenant_id", tenantID, "count", len(chunk), "error", err)
			return nil, fmt.Errorf("failed to get menu items: %w", err)
		}
		rows = append(rows, part...)
	}
	return r.mapper.ToEntities(rows)
}

// ListByTenant returns every item of the tenant in creation order.
func (r *MenuItemRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]*menu.MenuItem, error) {
	var rows []*models.MenuItemModel
	if err := r.db.WithContext(ctx).Scopes(db.Tenant(tenantID)).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list menu items", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

// DeleteByIDs hard-deletes the items, one statement per batch.
func (r *MenuItemRepositoryImpl) DeleteByIDs(ctx context.Context, tenantID string, ids []string) (int64, error) {
	var total int64
	for _, chunk := range db.Chunk(ids, constants.DefaultBatchSize) {
		result := r.db.WithContext(ctx).Scopes(db.Tenant(tenantID)).Where("id IN ?", chunk).Delete(&models.MenuItemModel{})
		if result.Error != nil {
			r.logger.Errorw("failed to delete menu items", "tenant_id", tenantID, "count", len(chunk), "error", result.Error)
			return total, fmt.Errorf("failed to delete menu items: %w", result.Error)
		}
		total += result.RowsAffected
	}
	return total, nil
}

// SetCategory reassigns the items to categoryID.
func (r *MenuItemRepositoryImpl) SetCategory(ctx context.Context, tenantID string, ids []string, categoryID string) (int64, error) {
	return r.updateColumns(ctx, tenantID, ids, map[string]any{"category_id": categoryID})
}

// SetChannelVisibility sets one channel's baseline flag on the items.
func (r *MenuItemRepositoryImpl) SetChannelVisibility(ctx context.Context, tenantID string, ids []string, c menu.Channel, visible bool) error {
	column, err := visibilityColumn(c)
	if err != nil {
		return err
	}
	_, err = r.updateColumns(ctx, tenantID, ids, map[string]any{column: visible})
	return err
}

func (r *MenuItemRepositoryImpl) updateColumns(ctx context.Context, tenantID string, ids []string, values map[string]any) (int64, error) {
	values["updated_at"] = time.Now().UTC()

	var total int64
	for _, chunk := range db.Chunk(ids, constants.DefaultBatchSize) {
		result := r.db.WithContext(ctx).Model(&models.MenuItemModel{}).
			Scopes(db.Tenant(tenantID)).
			Where("id IN ?", chunk).
			Updates(values)
		if result.Error != nil {
			r.logger.Errorw("failed to update menu items", "tenant_id", tenantID, "count", len(chunk), "error", result.Error)
			return total, fmt.Errorf("failed to update menu items: %w", result.Error)
		}
		total += result.RowsAffected
	}
	return total, nil
}

func visibilityColumn(c menu.Channel) (string, error) {
	switch c {
	case menu.ChannelDineIn:
		return "visible_dine_in", nil
	case menu.ChannelOnline:
		return "visible_online", nil
	}
	return "", menu.ErrInvalidChannel
}
