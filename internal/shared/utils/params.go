package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"qravy/internal/shared/errors"
	"qravy/internal/shared/id"
)

// ParseSIDParam parses and validates a prefixed ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id").
// prefix is the expected ID prefix (e.g., id.PrefixMenuItem).
// entityName is used in error messages (e.g., "menu item").
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// QueryAlias returns the first non-empty query value among names, so that
// snake_case and camelCase spellings are both accepted.
func QueryAlias(c *gin.Context, names ...string) string {
	for _, name := range names {
		if v := c.Query(name); v != "" {
			return v
		}
	}
	return ""
}
