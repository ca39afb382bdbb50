package usecases

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/logger"
)

// UpdateMenuItemUseCase edits an item's own fields. Overlays are untouched.
type UpdateMenuItemUseCase struct {
	reader    menuReader
	sanitizer TextSanitizer
	recorder  *ChangeRecorder
	logger    logger.Interface
}

// NewUpdateMenuItemUseCase creates a new update menu item use case
func NewUpdateMenuItemUseCase(
	items menu.MenuItemRepository,
	sanitizer TextSanitizer,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *UpdateMenuItemUseCase {
	return &UpdateMenuItemUseCase{
		reader:    menuReader{items: items, logger: logger},
		sanitizer: sanitizer,
		recorder:  recorder,
		logger:    logger,
	}
}

// Execute executes the update menu item use case
func (uc *UpdateMenuItemUseCase) Execute(ctx context.Context, caller Caller, itemID string, req dto.UpdateMenuItemRequest) (*dto.MenuItemDTO, error) {
	req.Normalize()
	uc.logger.Infow("executing update menu item use case", "tenant_id", caller.TenantID, "item_id", itemID)

	item, err := uc.reader.item(ctx, caller.TenantID, itemID)
	if err != nil {
		return nil, err
	}
	before := dto.ToMenuItemDTO(item)

	if req.Name != nil {
		if err := item.Rename(uc.sanitizer.StripTags(*req.Name)); err != nil {
			return nil, domainValidationError(err)
		}
	}
	if req.Description != nil {
		if err := item.Describe(uc.sanitizer.StripTags(*req.Description)); err != nil {
			return nil, domainValidationError(err)
		}
	}
	if req.Price != nil {
		if err := item.Reprice(*req.Price); err != nil {
			return nil, domainValidationError(err)
		}
	}
	if req.Visibility != nil {
		for _, c := range menu.AllChannels {
			if flag := explicitFlag(req.Visibility, c); flag != nil {
				item.SetChannelVisibility(c, *flag)
			}
		}
	}

	if err := uc.reader.items.Update(ctx, item); err != nil {
		return nil, storeError(uc.logger, "failed to update menu item", err, "tenant_id", caller.TenantID, "item_id", itemID)
	}

	after := dto.ToMenuItemDTO(item)
	uc.recorder.Record(ctx, caller, audit.ActionItemUpdate, []string{itemID}, before, after)

	uc.logger.Infow("menu item updated successfully", "tenant_id", caller.TenantID, "item_id", itemID)
	return &after, nil
}
