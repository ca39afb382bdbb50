package authorization

type UserRole string

const (
	RoleOwner  UserRole = "owner"
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleViewer UserRole = "viewer"
	// RoleBranch is a device session bound to one location.
	RoleBranch UserRole = "branch"
)

func (r UserRole) String() string {
	return string(r)
}

// CanWrite reports whether the role edits the menu without location limits.
func (r UserRole) CanWrite() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleEditor
}

// IsBranch reports whether the session is pinned to a location.
func (r UserRole) IsBranch() bool {
	return r == RoleBranch
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEditor, RoleViewer, RoleBranch:
		return true
	}
	return false
}

// ParseUserRole falls back to the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleViewer
}
