package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"qravy/internal/infrastructure/auth"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils"
)

// TokenVerifier parses a bearer token into claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// session on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("failed to verify token", "error", err, "path", c.Request.URL.Path)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTenantID, claims.TenantID)
		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role.String())
		c.Set(constants.ContextKeyLocationID, claims.LocationID)

		c.Next()
	}
}
