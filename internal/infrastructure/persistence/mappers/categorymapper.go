package mappers

import (
	"fmt"

	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/mapper"
)

// CategoryMapper handles the conversion between categories and persistence models.
type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*menu.Category, error)
	ToModel(entity *menu.Category) *models.CategoryModel
	ToEntities(models []*models.CategoryModel) ([]*menu.Category, error)
}

// CategoryMapperImpl is the concrete implementation of CategoryMapper.
type CategoryMapperImpl struct{}

// NewCategoryMapper creates a new category mapper.
func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) (*menu.Category, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := menu.ReconstructCategory(
		model.ID,
		model.TenantID,
		model.Name,
		model.Scope,
		model.LocationID,
		model.ChannelScope,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category entity: %w", err)
	}
	return entity, nil
}

func (m *CategoryMapperImpl) ToModel(entity *menu.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}

	p := entity.Placement()
	return &models.CategoryModel{
		ID:           entity.ID(),
		TenantID:     entity.TenantID(),
		Name:         entity.Name(),
		NameKey:      entity.NameKey(),
		Scope:        p.Scope.String(),
		LocationID:   p.LocationID,
		ChannelScope: entity.ChannelScope().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *CategoryMapperImpl) ToEntities(modelList []*models.CategoryModel) ([]*menu.Category, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CategoryModel) string { return model.ID })
}
