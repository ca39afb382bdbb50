package usecases

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/audit"
	"qravy/internal/domain/availability"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/logger"
)

// BulkSetAvailabilityUseCase turns many items on or off, at one location
// or everywhere.
type BulkSetAvailabilityUseCase struct {
	reader           menuReader
	itemOverlays     menu.ItemOverlayRepository
	categoryOverlays menu.CategoryOverlayRepository
	recorder         *ChangeRecorder
	logger           logger.Interface
}

// NewBulkSetAvailabilityUseCase creates a new bulk availability use case
func NewBulkSetAvailabilityUseCase(
	items menu.MenuItemRepository,
	locations menu.LocationRepository,
	itemOverlays menu.ItemOverlayRepository,
	categoryOverlays menu.CategoryOverlayRepository,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *BulkSetAvailabilityUseCase {
	return &BulkSetAvailabilityUseCase{
		reader:           menuReader{items: items, locations: locations, logger: logger},
		itemOverlays:     itemOverlays,
		categoryOverlays: categoryOverlays,
		recorder:         recorder,
		logger:           logger,
	}
}

// Execute executes the bulk availability use case
func (uc *BulkSetAvailabilityUseCase) Execute(ctx context.Context, caller Caller, req dto.BulkAvailabilityRequest) (*dto.BulkResultDTO, error) {
	req.Normalize()
	if req.Active == nil {
		return nil, errors.NewValidationError("active is required")
	}
	active := *req.Active

	locationID, err := authorization.BranchLocation(caller.Role, caller.LocationID, req.LocationID)
	if err != nil {
		return nil, err
	}
	channel, err := parseChannel(req.Channel)
	if err != nil {
		return nil, err
	}
	if err := validateLocationID(locationID); err != nil {
		return nil, err
	}

	uc.logger.Infow("executing bulk availability use case",
		"tenant_id", caller.TenantID,
		"ids", len(req.IDs),
		"active", active,
		"location_id", locationID)

	items, skipped, err := uc.reader.workingSet(ctx, caller.TenantID, req.IDs)
	if err != nil {
		return nil, err
	}

	targets := menu.TargetChannels(channel)
	result := &dto.BulkResultDTO{Processed: []string{}, Skipped: skipped}

	switch {
	case locationID != "":
		if err := uc.reader.location(ctx, caller.TenantID, locationID); err != nil {
			return nil, err
		}
		err = uc.setAtLocation(ctx, caller.TenantID, items, locationID, targets, active, result)
	case active:
		err = uc.clearOffEverywhere(ctx, caller.TenantID, items, targets, result)
	default:
		err = uc.setOffEverywhere(ctx, caller.TenantID, items, targets, result)
	}
	if err != nil {
		return nil, err
	}

	if len(result.Processed) > 0 {
		uc.recorder.Record(ctx, caller, audit.ActionBulkAvailability, result.Processed, nil, map[string]any{
			"active":      active,
			"location_id": locationID,
			"channel":     channelString(channel),
		})
	}

	uc.logger.Infow("bulk availability applied",
		"tenant_id", caller.TenantID,
		"processed", len(result.Processed),
		"affected", result.Affected)
	return result, nil
}

// setAtLocation writes soft overlays at one location. Items pinned elsewhere
// and channels on which the item's category is removed there are skipped.
func (uc *BulkSetAvailabilityUseCase) setAtLocation(
	ctx context.Context,
	tenantID string,
	items []*menu.MenuItem,
	locationID string,
	targets []menu.Channel,
	active bool,
	result *dto.BulkResultDTO,
) error {
	categoryIDs := make([]string, 0, len(items))
	for _, item := range items {
		if item.CategoryID() != "" {
			categoryIDs = append(categoryIDs, item.CategoryID())
		}
	}
	var categoryIndex availability.OverlayIndex
	if len(categoryIDs) > 0 {
		overlays, err := uc.categoryOverlays.ListBySubjects(ctx, tenantID, categoryIDs)
		if err != nil {
			return storeError(uc.logger, "failed to load category overlays", err, "tenant_id", tenantID)
		}
		categoryIndex = availability.NewOverlayIndex(overlays)
	}

	state := menu.SoftState(active)
	var writes []menu.Overlay
	for _, item := range items {
		if item.Placement().PinnedElsewhere(locationID) {
			result.Skipped = append(result.Skipped, item.ID())
			continue
		}
		wrote := false
		for _, c := range targets {
			if s, _ := categoryIndex.Lookup(item.CategoryID(), locationID, c); s == menu.OverlayRemoved {
				continue
			}
			writes = append(writes, menu.NewOverlay(item.ID(), locationID, c, state))
			wrote = true
		}
		if wrote {
			result.Processed = append(result.Processed, item.ID())
		} else {
			result.Skipped = append(result.Skipped, item.ID())
		}
	}

	if err := uc.itemOverlays.UpsertSoft(ctx, tenantID, writes); err != nil {
		return storeError(uc.logger, "failed to write availability overlays", err, "tenant_id", tenantID, "location_id", locationID)
	}
	result.Affected = int64(len(writes))
	return nil
}

// clearOffEverywhere removes off overlays at every location. Tombstones stay.
func (uc *BulkSetAvailabilityUseCase) clearOffEverywhere(ctx context.Context, tenantID string, items []*menu.MenuItem, targets []menu.Channel, result *dto.BulkResultDTO) error {
	ids := itemIDs(items)
	filter := menu.OverlayFilter{Channels: targets, States: []menu.OverlayState{menu.OverlaySoftOff}}
	deleted, err := uc.itemOverlays.DeleteBySubjects(ctx, tenantID, ids, filter)
	if err != nil {
		return storeError(uc.logger, "failed to clear availability overlays", err, "tenant_id", tenantID)
	}
	result.Processed = append(result.Processed, ids...)
	result.Affected = deleted
	return nil
}

// setOffEverywhere writes off at every registry location; pinned items only
// at their own location.
func (uc *BulkSetAvailabilityUseCase) setOffEverywhere(ctx context.Context, tenantID string, items []*menu.MenuItem, targets []menu.Channel, result *dto.BulkResultDTO) error {
	registry, err := uc.reader.registry(ctx, tenantID)
	if err != nil {
		return err
	}
	if len(registry) == 0 {
		registry = []string{""}
	}

	var writes []menu.Overlay
	for _, item := range items {
		locations := registry
		if p := item.Placement(); p.IsPinned() {
			locations = []string{p.LocationID}
		}
		for _, loc := range locations {
			for _, c := range targets {
				writes = append(writes, menu.NewOverlay(item.ID(), loc, c, menu.OverlaySoftOff))
			}
		}
		result.Processed = append(result.Processed, item.ID())
	}

	if err := uc.itemOverlays.UpsertSoft(ctx, tenantID, writes); err != nil {
		return storeError(uc.logger, "failed to write availability overlays", err, "tenant_id", tenantID)
	}
	result.Affected = int64(len(writes))
	return nil
}
