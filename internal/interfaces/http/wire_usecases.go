package http

import (
	"qravy/internal/application/menu/usecases"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	listMenuItemsUC    *usecases.ListMenuItemsUseCase
	createMenuItemUC   *usecases.CreateMenuItemUseCase
	updateMenuItemUC   *usecases.UpdateMenuItemUseCase
	deleteMenuItemUC   *usecases.DeleteMenuItemUseCase
	bulkAvailabilityUC *usecases.BulkSetAvailabilityUseCase
	bulkDeleteUC       *usecases.BulkDeleteMenuItemsUseCase
	bulkRecategorizeUC *usecases.BulkRecategorizeUseCase
	setCategoryVisUC   *usecases.SetCategoryVisibilityUseCase
	clearCategoryVisUC *usecases.ClearCategoryVisibilityUseCase
}

func newUseCases(r *repositories, cache usecases.MenuViewCache, log logger.Interface) *allUseCases {
	text := markdown.NewMarkdownService()
	recorder := usecases.NewChangeRecorder(r.auditRepo, cache, log)

	return &allUseCases{
		listMenuItemsUC: usecases.NewListMenuItemsUseCase(
			r.itemRepo, r.categoryRepo, r.locationRepo, r.itemOverlayRepo, r.categoryOverlayRepo, cache, text, log,
		),
		createMenuItemUC: usecases.NewCreateMenuItemUseCase(
			r.itemRepo, r.categoryRepo, r.locationRepo, r.itemOverlayRepo, r.categoryOverlayRepo, text, recorder, log,
		),
		updateMenuItemUC: usecases.NewUpdateMenuItemUseCase(r.itemRepo, text, recorder, log),
		deleteMenuItemUC: usecases.NewDeleteMenuItemUseCase(r.itemRepo, r.locationRepo, r.itemOverlayRepo, recorder, log),
		bulkAvailabilityUC: usecases.NewBulkSetAvailabilityUseCase(
			r.itemRepo, r.locationRepo, r.itemOverlayRepo, r.categoryOverlayRepo, recorder, log,
		),
		bulkDeleteUC:       usecases.NewBulkDeleteMenuItemsUseCase(r.itemRepo, r.locationRepo, r.itemOverlayRepo, recorder, log),
		bulkRecategorizeUC: usecases.NewBulkRecategorizeUseCase(r.itemRepo, r.categoryRepo, recorder, log),
		setCategoryVisUC: usecases.NewSetCategoryVisibilityUseCase(
			r.itemRepo, r.categoryRepo, r.locationRepo, r.itemOverlayRepo, r.categoryOverlayRepo, recorder, log,
		),
		clearCategoryVisUC: usecases.NewClearCategoryVisibilityUseCase(
			r.itemRepo, r.categoryRepo, r.locationRepo, r.itemOverlayRepo, r.categoryOverlayRepo, recorder, log,
		),
	}
}
