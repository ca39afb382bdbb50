package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/shared/authorization"
)

func TestBuildSession(t *testing.T) {
	session, err := buildSession("tnt_A", "usr_1", "branch", "loc_L1")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleBranch, session.Role)
	assert.Equal(t, "loc_L1", session.LocationID)

	session, err = buildSession("tnt_A", "usr_1", "owner", "")
	require.NoError(t, err)
	assert.Empty(t, session.LocationID)

	tests := []struct {
		name     string
		tenant   string
		role     string
		location string
	}{
		{"unknown role", "tnt_A", "chef", ""},
		{"missing tenant", "", "editor", ""},
		{"tenant without prefix", "acme", "editor", ""},
		{"branch without location", "tnt_A", "branch", ""},
		{"branch with bad location", "tnt_A", "branch", "L1"},
		{"location on non-branch role", "tnt_A", "editor", "loc_L1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildSession(tt.tenant, "usr_1", tt.role, tt.location)
			assert.Error(t, err)
		})
	}
}
