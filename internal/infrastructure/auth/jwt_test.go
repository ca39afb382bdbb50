package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/shared/authorization"
	apperrors "qravy/internal/shared/errors"
)

const testSecret = "test-secret-with-enough-length-123"

func TestGenerateAndVerify(t *testing.T) {
	svc := NewJWTService(testSecret, "qravy", 15)

	token, err := svc.Generate(Session{
		TenantID:   "tnt_abc",
		UserID:     "usr_1",
		Role:       authorization.RoleBranch,
		LocationID: "loc_main",
	})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "tnt_abc", claims.TenantID)
	assert.Equal(t, "usr_1", claims.UserID)
	assert.Equal(t, authorization.RoleBranch, claims.Role)
	assert.Equal(t, "loc_main", claims.LocationID)
	assert.Equal(t, "qravy", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("another-secret-of-enough-length", "qravy", 15).
		Generate(Session{TenantID: "tnt_abc", UserID: "u", Role: authorization.RoleEditor})
	require.NoError(t, err)

	_, err = NewJWTService(testSecret, "qravy", 15).Verify(token)
	require.Error(t, err)
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeTokenInvalid, authErr.Type)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewJWTService(testSecret, "qravy", -1)
	token, err := svc.Generate(Session{TenantID: "tnt_abc", UserID: "u", Role: authorization.RoleEditor})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeTokenExpired, authErr.Type)
	assert.False(t, apperrors.ShouldLogAuthError(err))
}

func TestVerifyMissingTenant(t *testing.T) {
	svc := NewJWTService(testSecret, "qravy", 15)
	token, err := svc.Generate(Session{UserID: "u", Role: authorization.RoleEditor})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeMissingTenancy, authErr.Type)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		TenantID: "tnt_abc",
		Role:     authorization.RoleOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "qravy",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewJWTService(testSecret, "qravy", 15).Verify(token)
	assert.Error(t, err)
}
