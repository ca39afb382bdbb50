package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"qravy/internal/shared/authorization"
	apperrors "qravy/internal/shared/errors"
)

// Claims identifies the caller of every menu request. LocationID is set for
// branch sessions only.
type Claims struct {
	TenantID   string                 `json:"tenant_id"`
	UserID     string                 `json:"user_id"`
	Role       authorization.UserRole `json:"role"`
	LocationID string                 `json:"location_id,omitempty"`
	jwt.RegisteredClaims
}

// Session is the caller identity a token is minted for.
type Session struct {
	TenantID   string
	UserID     string
	Role       authorization.UserRole
	LocationID string
}

type JWTService struct {
	secret           []byte
	issuer           string
	accessExpMinutes int
}

func NewJWTService(secret, issuer string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		issuer:           issuer,
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an HS256 access token for the session.
func (s *JWTService) Generate(session Session) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		TenantID:   session.TenantID,
		UserID:     session.UserID,
		Role:       session.Role,
		LocationID: session.LocationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   session.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify parses a bearer token. Failures are returned as *errors.AuthError.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError()
		}
		return nil, apperrors.NewTokenInvalidError(err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewTokenInvalidError("unexpected claims")
	}
	if claims.TenantID == "" {
		return nil, apperrors.NewMissingTenantError()
	}
	if !claims.Role.IsValid() {
		return nil, apperrors.NewTokenInvalidError(fmt.Sprintf("unknown role %q", claims.Role))
	}
	return claims, nil
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
