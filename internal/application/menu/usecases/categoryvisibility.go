package usecases

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/logger"
)

// categoryVisibility holds what setting and clearing a category overlay share.
type categoryVisibility struct {
	reader           menuReader
	itemOverlays     menu.ItemOverlayRepository
	categoryOverlays menu.CategoryOverlayRepository
	recorder         *ChangeRecorder
	logger           logger.Interface
}

// target validates the request and loads the category.
func (cv *categoryVisibility) target(ctx context.Context, tenantID, categoryID, locationID string) (*menu.Category, error) {
	if locationID == "" {
		return nil, errors.NewValidationError("location_id is required")
	}
	category, err := cv.reader.category(ctx, tenantID, categoryID, "")
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.NewValidationError("category ID is required")
	}
	if err := cv.reader.location(ctx, tenantID, locationID); err != nil {
		return nil, err
	}
	if category.Placement().PinnedElsewhere(locationID) {
		return nil, errors.NewValidationError("category is pinned to another location", category.Placement().LocationID)
	}
	return category, nil
}

// SetCategoryVisibilityUseCase writes a category overlay. Items are resolved
// against it directly, so their own overlays are left untouched.
type SetCategoryVisibilityUseCase struct {
	categoryVisibility
}

// NewSetCategoryVisibilityUseCase creates a new set category visibility use case
func NewSetCategoryVisibilityUseCase(
	items menu.MenuItemRepository,
	categories menu.CategoryRepository,
	locations menu.LocationRepository,
	itemOverlays menu.ItemOverlayRepository,
	categoryOverlays menu.CategoryOverlayRepository,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *SetCategoryVisibilityUseCase {
	return &SetCategoryVisibilityUseCase{categoryVisibility{
		reader:           menuReader{items: items, categories: categories, locations: locations, logger: logger},
		itemOverlays:     itemOverlays,
		categoryOverlays: categoryOverlays,
		recorder:         recorder,
		logger:           logger,
	}}
}

// Execute executes the set category visibility use case
func (uc *SetCategoryVisibilityUseCase) Execute(ctx context.Context, caller Caller, categoryID string, req dto.CategoryVisibilityRequest) (*dto.CategoryOverlayDTO, error) {
	req.Normalize()
	state, err := menu.ParseOverlayState(req.State)
	if err != nil {
		return nil, domainValidationError(err)
	}
	channel, err := parseChannel(req.Channel)
	if err != nil {
		return nil, err
	}
	if err := validateLocationID(req.LocationID); err != nil {
		return nil, err
	}

	uc.logger.Infow("executing set category visibility use case",
		"tenant_id", caller.TenantID,
		"category_id", categoryID,
		"location_id", req.LocationID,
		"state", state)

	category, err := uc.target(ctx, caller.TenantID, categoryID, req.LocationID)
	if err != nil {
		return nil, err
	}

	targets := menu.TargetChannels(channel)
	keys := make([]menu.OverlayKey, 0, len(targets))
	for _, c := range targets {
		keys = append(keys, menu.OverlayKey{SubjectID: category.ID(), LocationID: req.LocationID, Channel: c})
	}

	if state == menu.OverlayRemoved {
		if err := uc.categoryOverlays.UpsertRemoved(ctx, caller.TenantID, keys); err != nil {
			return nil, storeError(uc.logger, "failed to write category tombstone", err, "tenant_id", caller.TenantID, "category_id", category.ID())
		}
	} else if err := uc.categoryOverlays.UpsertSoft(ctx, caller.TenantID, withState(keys, state)); err != nil {
		return nil, storeError(uc.logger, "failed to write category override", err, "tenant_id", caller.TenantID, "category_id", category.ID())
	}

	result := &dto.CategoryOverlayDTO{
		CategoryID: category.ID(),
		LocationID: req.LocationID,
		Channels:   dto.ChannelStrings(targets),
		State:      state.String(),
	}
	uc.recorder.Record(ctx, caller, audit.ActionCategoryVisibilitySet, []string{category.ID()}, nil, result)
	return result, nil
}

// ClearCategoryVisibilityUseCase deletes a category overlay and the item
// overlays inherited from it at the same keys. Overlays written for the
// items themselves, tombstones included, stay.
type ClearCategoryVisibilityUseCase struct {
	categoryVisibility
}

// NewClearCategoryVisibilityUseCase creates a new clear category visibility use case
func NewClearCategoryVisibilityUseCase(
	items menu.MenuItemRepository,
	categories menu.CategoryRepository,
	locations menu.LocationRepository,
	itemOverlays menu.ItemOverlayRepository,
	categoryOverlays menu.CategoryOverlayRepository,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *ClearCategoryVisibilityUseCase {
	return &ClearCategoryVisibilityUseCase{categoryVisibility{
		reader:           menuReader{items: items, categories: categories, locations: locations, logger: logger},
		itemOverlays:     itemOverlays,
		categoryOverlays: categoryOverlays,
		recorder:         recorder,
		logger:           logger,
	}}
}

// Execute executes the clear category visibility use case. Clearing a key
// with no overlay is a no-op.
func (uc *ClearCategoryVisibilityUseCase) Execute(ctx context.Context, caller Caller, categoryID string, req dto.ClearCategoryVisibilityRequest) (*dto.CategoryOverlayDTO, error) {
	channel, err := parseChannel(req.Channel)
	if err != nil {
		return nil, err
	}
	if err := validateLocationID(req.LocationID); err != nil {
		return nil, err
	}

	uc.logger.Infow("executing clear category visibility use case",
		"tenant_id", caller.TenantID,
		"category_id", categoryID,
		"location_id", req.LocationID)

	category, err := uc.target(ctx, caller.TenantID, categoryID, req.LocationID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.categoryOverlays.ListBySubjects(ctx, caller.TenantID, []string{category.ID()})
	if err != nil {
		return nil, storeError(uc.logger, "failed to load category overlays", err, "tenant_id", caller.TenantID, "category_id", category.ID())
	}

	targets := menu.TargetChannels(channel)
	wanted := make(map[menu.Channel]bool, len(targets))
	for _, c := range targets {
		wanted[c] = true
	}

	var cleared []menu.Overlay
	for _, o := range existing {
		if o.LocationID == req.LocationID && wanted[o.Channel] {
			cleared = append(cleared, o)
		}
	}

	result := &dto.CategoryOverlayDTO{
		CategoryID: category.ID(),
		LocationID: req.LocationID,
		Channels:   dto.ChannelStrings(targets),
	}
	if len(cleared) == 0 {
		return result, nil
	}

	keys := make([]menu.OverlayKey, 0, len(cleared))
	for _, o := range cleared {
		keys = append(keys, o.OverlayKey)
	}
	if _, err := uc.categoryOverlays.DeleteKeys(ctx, caller.TenantID, keys); err != nil {
		return nil, storeError(uc.logger, "failed to delete category overlays", err, "tenant_id", caller.TenantID, "category_id", category.ID())
	}

	channels := make([]menu.Channel, 0, len(cleared))
	for _, o := range cleared {
		channels = append(channels, o.Channel)
	}
	lifted, err := uc.itemOverlays.DeleteInherited(ctx, caller.TenantID, category.ID(), menu.OverlayFilter{
		LocationIDs: []string{req.LocationID},
		Channels:    channels,
	})
	if err != nil {
		return nil, storeError(uc.logger, "failed to delete inherited item overlays", err, "tenant_id", caller.TenantID, "category_id", category.ID())
	}
	result.ItemsLifted = lifted

	uc.recorder.Record(ctx, caller, audit.ActionCategoryVisibilityClear, []string{category.ID()}, cleared, result)
	return result, nil
}

func withState(keys []menu.OverlayKey, state menu.OverlayState) []menu.Overlay {
	out := make([]menu.Overlay, 0, len(keys))
	for _, k := range keys {
		out = append(out, menu.Overlay{OverlayKey: k, State: state})
	}
	return out
}
