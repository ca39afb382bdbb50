package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qravy/internal/application/menu/dto"
	"qravy/internal/application/menu/usecases"
	"qravy/internal/shared/id"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils"
)

// Handler serves the menu item endpoints.
type Handler struct {
	listUC             ListMenuItemsExecutor
	createUC           CreateMenuItemExecutor
	updateUC           UpdateMenuItemExecutor
	deleteUC           DeleteMenuItemExecutor
	bulkAvailabilityUC BulkSetAvailabilityExecutor
	bulkDeleteUC       BulkDeleteMenuItemsExecutor
	bulkCategoryUC     BulkRecategorizeExecutor
	logger             logger.Interface
}

func NewHandler(
	listUC ListMenuItemsExecutor,
	createUC CreateMenuItemExecutor,
	updateUC UpdateMenuItemExecutor,
	deleteUC DeleteMenuItemExecutor,
	bulkAvailabilityUC BulkSetAvailabilityExecutor,
	bulkDeleteUC BulkDeleteMenuItemsExecutor,
	bulkCategoryUC BulkRecategorizeExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:             listUC,
		createUC:           createUC,
		updateUC:           updateUC,
		deleteUC:           deleteUC,
		bulkAvailabilityUC: bulkAvailabilityUC,
		bulkDeleteUC:       bulkDeleteUC,
		bulkCategoryUC:     bulkCategoryUC,
		logger:             logger,
	}
}

// ListMenuItems returns the resolved menu for a view
// @Summary List menu items
// @Description Resolve every menu item for the caller's tenant at a location and channel
// @Tags Menu Items
// @Produce json
// @Security Bearer
// @Param location_id query string false "Location ID (alias locationId)"
// @Param channel query string false "Channel" Enums(dine-in, online)
// @Success 200 {object} utils.Response{data=dto.MenuListDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /menu-items [get]
func (h *Handler) ListMenuItems(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListMenuItemsQuery{
		LocationID: utils.QueryAlias(c, "location_id", "locationId"),
		Channel:    c.Query("channel"),
	}
	result, err := h.listUC.Execute(c.Request.Context(), caller, query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateMenuItem creates a menu item
// @Summary Create menu item
// @Description Create a menu item; it inherits the visibility its category carries at creation
// @Tags Menu Items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} utils.Response{data=dto.MenuItemDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /menu-items [post]
func (h *Handler) CreateMenuItem(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create menu item", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Menu item created successfully")
}

// UpdateMenuItem updates a menu item
// @Summary Update menu item
// @Description Partially update a menu item's catalog fields
// @Tags Menu Items
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Menu item ID"
// @Param request body dto.UpdateMenuItemRequest true "Fields to change"
// @Success 200 {object} utils.Response{data=dto.MenuItemDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /menu-items/{id} [post]
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	itemID, err := utils.ParseSIDParam(c, "id", id.PrefixMenuItem, "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update menu item", "item_id", itemID, "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), caller, itemID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item updated successfully", result)
}

// DeleteMenuItem deletes a menu item, optionally for one location or channel
// @Summary Delete menu item
// @Description Hard delete a menu item, or tombstone it at a location and channel
// @Tags Menu Items
// @Produce json
// @Security Bearer
// @Param id path string true "Menu item ID"
// @Param location_id query string false "Location ID (alias locationId)"
// @Param channel query string false "Channel" Enums(dine-in, online)
// @Success 200 {object} utils.Response{data=dto.DeleteResultDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /menu-items/{id} [delete]
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	itemID, err := utils.ParseSIDParam(c, "id", id.PrefixMenuItem, "menu item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	scope := dto.DeleteScope{
		LocationID: utils.QueryAlias(c, "location_id", "locationId"),
		Channel:    c.Query("channel"),
	}
	result, err := h.deleteUC.Execute(c.Request.Context(), caller, itemID, scope)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu item deleted", result)
}

// BulkSetAvailability turns menu items on or off
// @Summary Bulk set availability
// @Description Set soft availability for many menu items at a location and channel
// @Tags Menu Items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.BulkAvailabilityRequest true "Item IDs and target state"
// @Success 200 {object} utils.Response{data=dto.BulkResultDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /menu-items/bulk/availability [post]
func (h *Handler) BulkSetAvailability(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.BulkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk availability", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.bulkAvailabilityUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// BulkDelete deletes many menu items
// @Summary Bulk delete menu items
// @Description Hard delete many menu items, or tombstone them at a location and channel
// @Tags Menu Items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.BulkDeleteRequest true "Item IDs and scope"
// @Success 200 {object} utils.Response{data=dto.BulkResultDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /menu-items/bulk/delete [post]
func (h *Handler) BulkDelete(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk delete", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.bulkDeleteUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// BulkRecategorize moves many menu items to a category
// @Summary Bulk recategorize menu items
// @Description Move many menu items into a category, or out of any category
// @Tags Menu Items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.BulkCategoryRequest true "Item IDs and target category"
// @Success 200 {object} utils.Response{data=dto.BulkResultDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /menu-items/bulk/category [post]
func (h *Handler) BulkRecategorize(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.BulkCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk recategorize", "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.bulkCategoryUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
