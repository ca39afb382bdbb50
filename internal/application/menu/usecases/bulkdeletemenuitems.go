package usecases

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/logger"
)

// BulkDeleteMenuItemsUseCase applies one delete scope to many items.
type BulkDeleteMenuItemsUseCase struct {
	reader       menuReader
	itemOverlays menu.ItemOverlayRepository
	recorder     *ChangeRecorder
	logger       logger.Interface
}

// NewBulkDeleteMenuItemsUseCase creates a new bulk delete use case
func NewBulkDeleteMenuItemsUseCase(
	items menu.MenuItemRepository,
	locations menu.LocationRepository,
	itemOverlays menu.ItemOverlayRepository,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *BulkDeleteMenuItemsUseCase {
	return &BulkDeleteMenuItemsUseCase{
		reader:       menuReader{items: items, locations: locations, logger: logger},
		itemOverlays: itemOverlays,
		recorder:     recorder,
		logger:       logger,
	}
}

// Execute executes the bulk delete use case
func (uc *BulkDeleteMenuItemsUseCase) Execute(ctx context.Context, caller Caller, req dto.BulkDeleteRequest) (*dto.BulkResultDTO, error) {
	req.Normalize()
	uc.logger.Infow("executing bulk delete use case", "tenant_id", caller.TenantID, "ids", len(req.IDs))

	channel, err := parseChannel(req.Channel)
	if err != nil {
		return nil, err
	}
	if err := validateLocationID(req.LocationID); err != nil {
		return nil, err
	}

	items, skipped, err := uc.reader.workingSet(ctx, caller.TenantID, req.IDs)
	if err != nil {
		return nil, err
	}
	if req.LocationID != "" {
		if err := uc.reader.location(ctx, caller.TenantID, req.LocationID); err != nil {
			return nil, err
		}
	}

	plan := newDeletePlan()
	result := &dto.BulkResultDTO{Processed: []string{}, Skipped: skipped}
	before := make([]dto.MenuItemDTO, 0, len(items))
	for _, item := range items {
		if plan.add(item, req.LocationID, channel) == EffectNoop {
			result.Skipped = append(result.Skipped, item.ID())
			continue
		}
		result.Processed = append(result.Processed, item.ID())
		before = append(before, dto.ToMenuItemDTO(item))
	}

	if len(result.Processed) > 0 {
		if err := plan.apply(ctx, caller.TenantID, uc.reader.items, uc.itemOverlays, uc.logger); err != nil {
			return nil, err
		}
		uc.recorder.Record(ctx, caller, audit.ActionBulkDelete, result.Processed, before, map[string]any{
			"location_id": req.LocationID,
			"channel":     channelString(channel),
		})
	}
	result.Affected = int64(len(result.Processed))

	uc.logger.Infow("bulk delete applied",
		"tenant_id", caller.TenantID,
		"processed", len(result.Processed),
		"skipped", len(result.Skipped))
	return result, nil
}
