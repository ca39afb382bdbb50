package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qravy/internal/application/menu/dto"
	"qravy/internal/shared/id"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils"
)

// CategoryVisibilityHandler serves category overlay endpoints.
type CategoryVisibilityHandler struct {
	setUC   SetCategoryVisibilityExecutor
	clearUC ClearCategoryVisibilityExecutor
	logger  logger.Interface
}

func NewCategoryVisibilityHandler(
	setUC SetCategoryVisibilityExecutor,
	clearUC ClearCategoryVisibilityExecutor,
	logger logger.Interface,
) *CategoryVisibilityHandler {
	return &CategoryVisibilityHandler{
		setUC:   setUC,
		clearUC: clearUC,
		logger:  logger,
	}
}

// SetVisibility sets a category overlay
// @Summary Set category visibility
// @Description Turn a category off or on, or remove it, at a location and channel
// @Tags Categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Category ID"
// @Param request body dto.CategoryVisibilityRequest true "Target state and scope"
// @Success 200 {object} utils.Response{data=dto.CategoryOverlayDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /categories/{id}/visibility [put]
func (h *CategoryVisibilityHandler) SetVisibility(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	categoryID, err := utils.ParseSIDParam(c, "id", id.PrefixCategory, "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CategoryVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for category visibility", "category_id", categoryID, "error", err)
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.setUC.Execute(c.Request.Context(), caller, categoryID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category visibility updated", result)
}

// ClearVisibility clears category overlays
// @Summary Clear category visibility
// @Description Drop a category's overlays at a location, and the item overlays inherited from them
// @Tags Categories
// @Produce json
// @Security Bearer
// @Param id path string true "Category ID"
// @Param location_id query string true "Location ID (alias locationId)"
// @Param channel query string false "Channel" Enums(dine-in, online)
// @Success 200 {object} utils.Response{data=dto.CategoryOverlayDTO}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /categories/{id}/visibility [delete]
func (h *CategoryVisibilityHandler) ClearVisibility(c *gin.Context) {
	caller, err := callerFrom(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	categoryID, err := utils.ParseSIDParam(c, "id", id.PrefixCategory, "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := dto.ClearCategoryVisibilityRequest{
		LocationID: utils.QueryAlias(c, "location_id", "locationId"),
		Channel:    c.Query("channel"),
	}
	result, err := h.clearUC.Execute(c.Request.Context(), caller, categoryID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category visibility cleared", result)
}
