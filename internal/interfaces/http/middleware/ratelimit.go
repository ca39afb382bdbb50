package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qravy/internal/infrastructure/ratelimit"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils"
)

// TenantRateLimiter limits mutations per tenant. It must run after RequireAuth.
type TenantRateLimiter struct {
	limiter ratelimit.RateLimiter
	limit   ratelimit.Limit
	logger  logger.Interface
}

func NewTenantRateLimiter(limiter ratelimit.RateLimiter, limit ratelimit.Limit, logger logger.Interface) *TenantRateLimiter {
	return &TenantRateLimiter{
		limiter: limiter,
		limit:   limit,
		logger:  logger,
	}
}

// Limit rejects the request with 429 once the tenant's window is full.
// Limiter failures let the request through.
func (rl *TenantRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetString(constants.ContextKeyTenantID)
		if tenantID == "" {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), "tenant:"+tenantID, rl.limit)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "tenant_id", tenantID, "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
