package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainPermission "qravy/internal/domain/permission"
	"qravy/internal/infrastructure/permission"
	"qravy/internal/interfaces/http/handlers/testutil"
	"qravy/internal/shared/constants"
)

type failingEnforcer struct{}

func (failingEnforcer) Enforce(string, string, string) (bool, error) {
	return false, errors.New("adapter unavailable")
}
func (failingEnforcer) AddPolicy(string, string, string) error    { return nil }
func (failingEnforcer) RemovePolicy(string, string, string) error { return nil }
func (failingEnforcer) LoadPolicy() error                         { return nil }

func newPermissionEngine(enforcer domainPermission.PermissionEnforcer, role, resource, action string) *gin.Engine {
	engine := gin.New()
	m := NewPermissionMiddleware(enforcer, testutil.NewMockLogger())
	engine.POST("/guarded", func(c *gin.Context) {
		if role != "" {
			c.Set(constants.ContextKeyUserRole, role)
		}
		c.Next()
	}, m.RequirePermission(resource, action), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return engine
}

func TestRequirePermission(t *testing.T) {
	enforcer, err := permission.NewMemoryEnforcer(testutil.NewMockLogger())
	require.NoError(t, err)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		wantCode int
	}{
		{"editor writes items", "editor", domainPermission.ResourceMenuItem, domainPermission.ActionWrite, http.StatusNoContent},
		{"owner inherits category write", "owner", domainPermission.ResourceCategory, domainPermission.ActionWrite, http.StatusNoContent},
		{"branch toggles", "branch", domainPermission.ResourceMenuItem, domainPermission.ActionToggle, http.StatusNoContent},
		{"branch cannot write", "branch", domainPermission.ResourceMenuItem, domainPermission.ActionWrite, http.StatusForbidden},
		{"viewer cannot toggle", "viewer", domainPermission.ResourceMenuItem, domainPermission.ActionToggle, http.StatusForbidden},
		{"no session", "", domainPermission.ResourceMenuItem, domainPermission.ActionRead, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newPermissionEngine(enforcer, tt.role, tt.resource, tt.action).
				ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequirePermission_EnforcerError(t *testing.T) {
	w := httptest.NewRecorder()
	newPermissionEngine(failingEnforcer{}, "editor", domainPermission.ResourceMenuItem, domainPermission.ActionWrite).
		ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/guarded", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
