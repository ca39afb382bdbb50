package middleware

import (
	"github.com/gin-gonic/gin"

	"qravy/internal/shared/constants"
	"qravy/internal/shared/id"
)

// RequestID propagates X-Request-ID, generating one when the client sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			if generated, err := id.Generate(16); err == nil {
				requestID = generated
			}
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)
		c.Next()
	}
}
