package menu

import (
	"github.com/gin-gonic/gin"

	"qravy/internal/application/menu/usecases"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/errors"
)

// callerFrom reads the session stored by the auth middleware.
func callerFrom(c *gin.Context) (usecases.Caller, error) {
	tenantID := c.GetString(constants.ContextKeyTenantID)
	if tenantID == "" {
		return usecases.Caller{}, errors.NewUnauthorizedError("user not authenticated")
	}
	return usecases.Caller{
		TenantID:   tenantID,
		UserID:     c.GetString(constants.ContextKeyUserID),
		Role:       authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
		LocationID: c.GetString(constants.ContextKeyLocationID),
	}, nil
}
