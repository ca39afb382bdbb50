package mappers

import (
	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/mapper"
)

// LocationMapper converts location rows to domain entities.
type LocationMapper interface {
	ToEntity(model *models.LocationModel) (*menu.Location, error)
	ToEntities(models []*models.LocationModel) ([]*menu.Location, error)
}

type LocationMapperImpl struct{}

func NewLocationMapper() LocationMapper {
	return &LocationMapperImpl{}
}

func (m *LocationMapperImpl) ToEntity(model *models.LocationModel) (*menu.Location, error) {
	if model == nil {
		return nil, nil
	}
	return menu.ReconstructLocation(model.ID, model.TenantID, model.Name, model.CreatedAt)
}

func (m *LocationMapperImpl) ToEntities(modelList []*models.LocationModel) ([]*menu.Location, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.LocationModel) string { return model.ID })
}
