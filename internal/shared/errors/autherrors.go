package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Token and session error types
const (
	ErrorTypeTokenExpired   ErrorType = "token_expired"
	ErrorTypeTokenInvalid   ErrorType = "token_invalid"
	ErrorTypeOutsideBranch  ErrorType = "outside_branch"
	ErrorTypeMissingTenancy ErrorType = "missing_tenant"
)

// AuthError is an authentication or session-scope failure.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as expired tokens.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to reach the AppError
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewTokenExpiredError creates an error for an expired bearer token
func NewTokenExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: "access token has expired",
			Code:    http.StatusUnauthorized,
		},
	}
}

// NewTokenInvalidError creates an error for a malformed or forged token
func NewTokenInvalidError(reason string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "invalid access token",
			Code:    http.StatusUnauthorized,
			Details: reason,
		},
		ShouldLog: true,
	}
}

// NewMissingTenantError is returned when a token carries no tenant.
func NewMissingTenantError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeMissingTenancy,
			Message: "token is not bound to a tenant",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: true,
	}
}

// NewOutsideBranchError is returned when a branch session addresses a
// location other than its own.
func NewOutsideBranchError(sessionLocation, requested string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeOutsideBranch,
			Message: "branch session cannot act on another location",
			Code:    http.StatusForbidden,
			Details: fmt.Sprintf("session location %s, requested %s", sessionLocation, requested),
		},
		ShouldLog: true,
	}
}

// GetAuthError extracts AuthError from the error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether an authentication error deserves a log line.
// Non-auth errors are always logged.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
