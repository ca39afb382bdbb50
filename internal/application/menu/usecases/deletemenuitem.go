package usecases

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/logger"
)

// DeleteMenuItemUseCase deletes an item entirely or at a location and/or channel.
type DeleteMenuItemUseCase struct {
	reader       menuReader
	itemOverlays menu.ItemOverlayRepository
	recorder     *ChangeRecorder
	logger       logger.Interface
}

// NewDeleteMenuItemUseCase creates a new delete menu item use case
func NewDeleteMenuItemUseCase(
	items menu.MenuItemRepository,
	locations menu.LocationRepository,
	itemOverlays menu.ItemOverlayRepository,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *DeleteMenuItemUseCase {
	return &DeleteMenuItemUseCase{
		reader:       menuReader{items: items, locations: locations, logger: logger},
		itemOverlays: itemOverlays,
		recorder:     recorder,
		logger:       logger,
	}
}

// Execute executes the delete menu item use case
func (uc *DeleteMenuItemUseCase) Execute(ctx context.Context, caller Caller, itemID string, scope dto.DeleteScope) (*dto.DeleteResultDTO, error) {
	uc.logger.Infow("executing delete menu item use case",
		"tenant_id", caller.TenantID,
		"item_id", itemID,
		"location_id", scope.LocationID,
		"channel", scope.Channel)

	channel, err := parseChannel(scope.Channel)
	if err != nil {
		return nil, err
	}
	if err := validateLocationID(scope.LocationID); err != nil {
		return nil, err
	}

	item, err := uc.reader.item(ctx, caller.TenantID, itemID)
	if err != nil {
		return nil, err
	}
	if scope.LocationID != "" {
		if err := uc.reader.location(ctx, caller.TenantID, scope.LocationID); err != nil {
			return nil, err
		}
	}

	plan := newDeletePlan()
	effect := plan.add(item, scope.LocationID, channel)
	if effect != EffectNoop {
		if err := plan.apply(ctx, caller.TenantID, uc.reader.items, uc.itemOverlays, uc.logger); err != nil {
			return nil, err
		}
		uc.recorder.Record(ctx, caller, audit.ActionItemDelete, []string{itemID}, dto.ToMenuItemDTO(item), map[string]any{
			"effect":      effect,
			"location_id": scope.LocationID,
			"channel":     channelString(channel),
		})
	}

	uc.logger.Infow("menu item delete applied", "tenant_id", caller.TenantID, "item_id", itemID, "effect", effect)
	return &dto.DeleteResultDTO{ID: itemID, Effect: effect}, nil
}
