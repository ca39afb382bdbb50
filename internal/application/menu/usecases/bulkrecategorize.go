package usecases

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/logger"
)

// BulkRecategorizeUseCase moves items to another category. Overlays and
// placements are left as they are.
type BulkRecategorizeUseCase struct {
	reader   menuReader
	recorder *ChangeRecorder
	logger   logger.Interface
}

// NewBulkRecategorizeUseCase creates a new bulk recategorize use case
func NewBulkRecategorizeUseCase(
	items menu.MenuItemRepository,
	categories menu.CategoryRepository,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *BulkRecategorizeUseCase {
	return &BulkRecategorizeUseCase{
		reader:   menuReader{items: items, categories: categories, logger: logger},
		recorder: recorder,
		logger:   logger,
	}
}

// Execute executes the bulk recategorize use case
func (uc *BulkRecategorizeUseCase) Execute(ctx context.Context, caller Caller, req dto.BulkCategoryRequest) (*dto.BulkResultDTO, error) {
	req.Normalize()
	if req.CategoryID == "" && req.Category == "" {
		return nil, errors.NewValidationError("category or category_id is required")
	}
	uc.logger.Infow("executing bulk recategorize use case", "tenant_id", caller.TenantID, "ids", len(req.IDs))

	category, err := uc.reader.category(ctx, caller.TenantID, req.CategoryID, req.Category)
	if err != nil {
		return nil, err
	}
	items, skipped, err := uc.reader.workingSet(ctx, caller.TenantID, req.IDs)
	if err != nil {
		return nil, err
	}

	ids := itemIDs(items)
	previous := make(map[string]string, len(items))
	for _, item := range items {
		previous[item.ID()] = item.CategoryID()
	}

	affected, err := uc.reader.items.SetCategory(ctx, caller.TenantID, ids, category.ID())
	if err != nil {
		return nil, storeError(uc.logger, "failed to recategorize menu items", err, "tenant_id", caller.TenantID, "category_id", category.ID())
	}

	uc.recorder.Record(ctx, caller, audit.ActionBulkRecategorize, ids, previous, map[string]any{
		"category_id": category.ID(),
	})

	uc.logger.Infow("menu items recategorized", "tenant_id", caller.TenantID, "category_id", category.ID(), "count", len(ids))
	return &dto.BulkResultDTO{Processed: ids, Skipped: skipped, Affected: affected}, nil
}
