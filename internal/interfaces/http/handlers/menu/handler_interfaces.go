package menu

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/application/menu/usecases"
)

type ListMenuItemsExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, query usecases.ListMenuItemsQuery) (*dto.MenuListDTO, error)
}

type CreateMenuItemExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, req dto.CreateMenuItemRequest) (*dto.MenuItemDTO, error)
}

type UpdateMenuItemExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, itemID string, req dto.UpdateMenuItemRequest) (*dto.MenuItemDTO, error)
}

type DeleteMenuItemExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, itemID string, scope dto.DeleteScope) (*dto.DeleteResultDTO, error)
}

type BulkSetAvailabilityExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, req dto.BulkAvailabilityRequest) (*dto.BulkResultDTO, error)
}

type BulkDeleteMenuItemsExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, req dto.BulkDeleteRequest) (*dto.BulkResultDTO, error)
}

type BulkRecategorizeExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, req dto.BulkCategoryRequest) (*dto.BulkResultDTO, error)
}

type SetCategoryVisibilityExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, categoryID string, req dto.CategoryVisibilityRequest) (*dto.CategoryOverlayDTO, error)
}

type ClearCategoryVisibilityExecutor interface {
	Execute(ctx context.Context, caller usecases.Caller, categoryID string, req dto.ClearCategoryVisibilityRequest) (*dto.CategoryOverlayDTO, error)
}
