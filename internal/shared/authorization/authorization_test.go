package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/shared/errors"
)

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleOwner, ParseUserRole("owner"))
	assert.Equal(t, RoleBranch, ParseUserRole("branch"))
	assert.Equal(t, RoleViewer, ParseUserRole("superuser"))
	assert.Equal(t, RoleViewer, ParseUserRole(""))
}

func TestUserRoleCanWrite(t *testing.T) {
	assert.True(t, RoleOwner.CanWrite())
	assert.True(t, RoleAdmin.CanWrite())
	assert.True(t, RoleEditor.CanWrite())
	assert.False(t, RoleViewer.CanWrite())
	assert.False(t, RoleBranch.CanWrite())
}

func TestBranchLocation(t *testing.T) {
	tests := []struct {
		name      string
		role      UserRole
		session   string
		requested string
		want      string
		forbidden bool
	}{
		{name: "editor keeps request", role: RoleEditor, requested: "loc_a", want: "loc_a"},
		{name: "editor unscoped", role: RoleEditor, want: ""},
		{name: "branch defaults to own", role: RoleBranch, session: "loc_a", want: "loc_a"},
		{name: "branch same location", role: RoleBranch, session: "loc_a", requested: "loc_a", want: "loc_a"},
		{name: "branch other location", role: RoleBranch, session: "loc_a", requested: "loc_b", forbidden: true},
		{name: "branch without location", role: RoleBranch, forbidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BranchLocation(tt.role, tt.session, tt.requested)
			if tt.forbidden {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
