package mappers

import (
	"fmt"
	"time"

	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/models"
)

// OverlayMapper converts between overlay rows of one table and domain overlays.
// M is the row type of that table.
type OverlayMapper[M any] interface {
	ToOverlay(model *M) (menu.Overlay, error)
	ToModel(tenantID string, overlay menu.Overlay, now time.Time) M
	// SubjectColumn names the column holding the item or category id.
	SubjectColumn() string
	// TracksOrigin reports whether rows carry an origin column.
	TracksOrigin() bool
}

type itemOverlayMapper struct{}

// NewItemOverlayMapper maps item_availability_overlays rows.
func NewItemOverlayMapper() OverlayMapper[models.ItemAvailabilityOverlayModel] {
	return itemOverlayMapper{}
}

func (itemOverlayMapper) ToOverlay(model *models.ItemAvailabilityOverlayModel) (menu.Overlay, error) {
	o, err := toOverlay(model.ItemID, model.LocationID, model.Channel, model.State)
	if err != nil {
		return menu.Overlay{}, err
	}
	o.Origin = model.Origin
	return o, nil
}

func (itemOverlayMapper) ToModel(tenantID string, o menu.Overlay, now time.Time) models.ItemAvailabilityOverlayModel {
	return models.ItemAvailabilityOverlayModel{
		TenantID:   tenantID,
		ItemID:     o.SubjectID,
		LocationID: o.LocationID,
		Channel:    o.Channel.String(),
		State:      o.State.String(),
		Origin:     o.Origin,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (itemOverlayMapper) SubjectColumn() string { return "item_id" }

func (itemOverlayMapper) TracksOrigin() bool { return true }

type categoryOverlayMapper struct{}

// NewCategoryOverlayMapper maps category_visibility_overlays rows.
func NewCategoryOverlayMapper() OverlayMapper[models.CategoryVisibilityOverlayModel] {
	return categoryOverlayMapper{}
}

func (categoryOverlayMapper) ToOverlay(model *models.CategoryVisibilityOverlayModel) (menu.Overlay, error) {
	return toOverlay(model.CategoryID, model.LocationID, model.Channel, model.State)
}

func (categoryOverlayMapper) ToModel(tenantID string, o menu.Overlay, now time.Time) models.CategoryVisibilityOverlayModel {
	return models.CategoryVisibilityOverlayModel{
		TenantID:   tenantID,
		CategoryID: o.SubjectID,
		LocationID: o.LocationID,
		Channel:    o.Channel.String(),
		State:      o.State.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (categoryOverlayMapper) SubjectColumn() string { return "category_id" }

func (categoryOverlayMapper) TracksOrigin() bool { return false }

func toOverlay(subjectID, locationID, channel, state string) (menu.Overlay, error) {
	c := menu.Channel(channel)
	if !c.IsValid() {
		return menu.Overlay{}, fmt.Errorf("overlay %s@%s: unknown channel %q", subjectID, locationID, channel)
	}
	s := menu.OverlayState(state)
	if !s.IsValid() {
		return menu.Overlay{}, fmt.Errorf("overlay %s@%s: unknown state %q", subjectID, locationID, state)
	}
	return menu.NewOverlay(subjectID, locationID, c, s), nil
}
