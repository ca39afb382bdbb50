package mappers

import (
	"fmt"

	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/mapper"
)

// MenuItemMapper handles the conversion between menu items and persistence models.
type MenuItemMapper interface {
	ToEntity(model *models.MenuItemModel) (*menu.MenuItem, error)
	ToModel(entity *menu.MenuItem) *models.MenuItemModel
	ToEntities(models []*models.MenuItemModel) ([]*menu.MenuItem, error)
}

// MenuItemMapperImpl is the concrete implementation of MenuItemMapper.
type MenuItemMapperImpl struct{}

// NewMenuItemMapper creates a new menu item mapper.
func NewMenuItemMapper() MenuItemMapper {
	return &MenuItemMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *MenuItemMapperImpl) ToEntity(model *models.MenuItemModel) (*menu.MenuItem, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := menu.ReconstructMenuItem(
		model.ID,
		model.TenantID,
		model.CategoryID,
		model.Name,
		model.Description,
		model.Price,
		model.Scope,
		model.LocationID,
		menu.Visibility{DineIn: model.VisibleDineIn, Online: model.VisibleOnline},
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct menu item entity: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *MenuItemMapperImpl) ToModel(entity *menu.MenuItem) *models.MenuItemModel {
	if entity == nil {
		return nil
	}

	p := entity.Placement()
	v := entity.Visibility()
	return &models.MenuItemModel{
		ID:            entity.ID(),
		TenantID:      entity.TenantID(),
		CategoryID:    entity.CategoryID(),
		Name:          entity.Name(),
		Description:   entity.Description(),
		Price:         entity.Price(),
		Scope:         p.Scope.String(),
		LocationID:    p.LocationID,
		VisibleDineIn: v.DineIn,
		VisibleOnline: v.Online,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities.
func (m *MenuItemMapperImpl) ToEntities(modelList []*models.MenuItemModel) ([]*menu.MenuItem, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.MenuItemModel) string { return model.ID })
}
