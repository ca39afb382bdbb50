package authorization

import (
	"qravy/internal/shared/errors"
)

// BranchLocation resolves the location a request acts on. Branch sessions
// act on their own location only: an empty request defaults to it and any
// other location is rejected. Other roles keep the requested location.
func BranchLocation(role UserRole, sessionLocation, requested string) (string, error) {
	if role != RoleBranch {
		return requested, nil
	}
	if sessionLocation == "" {
		return "", errors.NewForbiddenError("branch session has no location")
	}
	if requested != "" && requested != sessionLocation {
		return "", errors.NewOutsideBranchError(sessionLocation, requested)
	}
	return sessionLocation, nil
}
