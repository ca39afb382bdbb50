package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/infrastructure/auth"
	"qravy/internal/interfaces/http/handlers/testutil"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/constants"
)

const testSecret = "middleware-test-secret-0123456789"

func newAuthEngine(svc *auth.JWTService) *gin.Engine {
	engine := gin.New()
	m := NewAuthMiddleware(svc, testutil.NewMockLogger())
	engine.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant":   c.GetString(constants.ContextKeyTenantID),
			"user":     c.GetString(constants.ContextKeyUserID),
			"role":     c.GetString(constants.ContextKeyUserRole),
			"location": c.GetString(constants.ContextKeyLocationID),
		})
	})
	return engine
}

func doAuthRequest(engine *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(constants.HeaderAuthorization, header)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	svc := auth.NewJWTService(testSecret, "qravy", 15)
	token, err := svc.Generate(auth.Session{
		TenantID:   "tnt_A",
		UserID:     "usr_1",
		Role:       authorization.RoleBranch,
		LocationID: "loc_L1",
	})
	require.NoError(t, err)

	w := doAuthRequest(newAuthEngine(svc), "bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "tnt_A", body["tenant"])
	assert.Equal(t, "usr_1", body["user"])
	assert.Equal(t, "branch", body["role"])
	assert.Equal(t, "loc_L1", body["location"])
}

func TestRequireAuth_Rejections(t *testing.T) {
	svc := auth.NewJWTService(testSecret, "qravy", 15)
	expired, err := auth.NewJWTService(testSecret, "qravy", -5).
		Generate(auth.Session{TenantID: "tnt_A", UserID: "usr_1", Role: authorization.RoleEditor})
	require.NoError(t, err)
	forged, err := auth.NewJWTService("some-other-secret-0123456789abcd", "qravy", 15).
		Generate(auth.Session{TenantID: "tnt_A", UserID: "usr_1", Role: authorization.RoleOwner})
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		errorType string
	}{
		{"missing header", "", "unauthorized"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "unauthorized"},
		{"empty token", "Bearer ", "unauthorized"},
		{"garbage token", "Bearer not-a-jwt", "token_invalid"},
		{"expired token", "Bearer " + expired, "token_expired"},
		{"wrong secret", "Bearer " + forged, "token_invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuthRequest(newAuthEngine(svc), tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.errorType, resp.Error.Type)
		})
	}
}
