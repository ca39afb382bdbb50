package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/errors"
)

func (f *fixture) availabilityUseCase() *BulkSetAvailabilityUseCase {
	return NewBulkSetAvailabilityUseCase(f.items, f.locations, f.itemOverlays, f.categoryOverlays, f.recorder, f.log)
}

func TestBulkSetAvailability_UnscopedOffThenOnKeepsTombstones(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2)
	f.addItem(t, "itm_A", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	f.addItem(t, "itm_B", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	ctx := context.Background()
	require.NoError(t, f.itemOverlays.UpsertRemoved(ctx, tenant, []menu.OverlayKey{key("itm_A", loc1, dineIn)}))

	uc := f.availabilityUseCase()
	res, err := uc.Execute(ctx, editor, dto.BulkAvailabilityRequest{IDs: []string{"itm_A", "itm_B"}, Active: boolPtr(false)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"itm_A", "itm_B"}, res.Processed)
	assert.Equal(t, int64(8), res.Affected)

	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key("itm_A", loc1, dineIn): menu.OverlayRemoved,
		key("itm_A", loc1, online): menu.OverlaySoftOff,
		key("itm_A", loc2, dineIn): menu.OverlaySoftOff,
		key("itm_A", loc2, online): menu.OverlaySoftOff,
	}, f.itemOverlayStates(t, "itm_A"))

	listed := findItem(f.list(t, loc2, &dineIn), "itm_B")
	require.NotNil(t, listed)
	assert.Equal(t, dto.StatusUnavailable, listed.Status)
	assert.True(t, listed.Hidden)

	res, err = uc.Execute(ctx, editor, dto.BulkAvailabilityRequest{IDs: []string{"itm_A", "itm_B"}, Active: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Affected)

	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key("itm_A", loc1, dineIn): menu.OverlayRemoved,
	}, f.itemOverlayStates(t, "itm_A"))
	assert.Empty(t, f.itemOverlayStates(t, "itm_B"))

	atL1 := f.list(t, loc1, &dineIn)
	assert.Nil(t, findItem(atL1, "itm_A"))
	require.NotNil(t, findItem(atL1, "itm_B"))
	assert.Equal(t, dto.StatusAvailable, findItem(atL1, "itm_B").Status)
	assert.Equal(t, int64(2), f.auditCount(t))
}

func TestBulkSetAvailability_AtLocation(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2)
	f.addItem(t, "itm_A", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	f.addItem(t, "itm_P", "", menu.PinnedPlacement(loc2), menu.DefaultVisibility())
	ctx := context.Background()

	res, err := f.availabilityUseCase().Execute(ctx, editor, dto.BulkAvailabilityRequest{
		IDs:             []string{"itm_A", "itm_P", "itm_Ghost", "junk"},
		Active:          boolPtr(false),
		Channel:         "online",
		LocationIDCamel: loc1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"itm_A"}, res.Processed)
	assert.ElementsMatch(t, []string{"itm_Ghost", "junk", "itm_P"}, res.Skipped)
	assert.Equal(t, int64(1), res.Affected)

	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key("itm_A", loc1, online): menu.OverlaySoftOff,
	}, f.itemOverlayStates(t, "itm_A"))
	assert.Empty(t, f.itemOverlayStates(t, "itm_P"))
}

func TestBulkSetAvailability_RemovedCategoryIsImmune(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1)
	f.addCategory(t, "cat_Bar", "Bar", menu.GlobalPlacement(), menu.ChannelScopeAll)
	f.addItem(t, "itm_Beer", "cat_Bar", menu.GlobalPlacement(), menu.DefaultVisibility())
	ctx := context.Background()
	require.NoError(t, f.categoryOverlays.UpsertRemoved(ctx, tenant, []menu.OverlayKey{
		key("cat_Bar", loc1, dineIn),
		key("cat_Bar", loc1, online),
	}))

	res, err := f.availabilityUseCase().Execute(ctx, editor, dto.BulkAvailabilityRequest{
		IDs:        []string{"itm_Beer"},
		Active:     boolPtr(true),
		LocationID: loc1,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Processed)
	assert.Equal(t, []string{"itm_Beer"}, res.Skipped)
	assert.Empty(t, f.itemOverlayStates(t, "itm_Beer"))
	assert.Nil(t, findItem(f.list(t, loc1, nil), "itm_Beer"))
	assert.Zero(t, f.auditCount(t))
}

func TestBulkSetAvailability_PinnedItemsOffOnlyAtOwnLocation(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2, loc3)
	f.addItem(t, "itm_P", "", menu.PinnedPlacement(loc3), menu.DefaultVisibility())

	_, err := f.availabilityUseCase().Execute(context.Background(), editor, dto.BulkAvailabilityRequest{
		IDs:     []string{"itm_P"},
		Active:  boolPtr(false),
		Channel: "dine-in",
	})
	require.NoError(t, err)
	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key("itm_P", loc3, dineIn): menu.OverlaySoftOff,
	}, f.itemOverlayStates(t, "itm_P"))
}

func TestBulkSetAvailability_BranchSession(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2)
	f.addItem(t, "itm_A", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	branch := Caller{TenantID: tenant, UserID: "usr_branch", Role: authorization.RoleBranch, LocationID: loc2}
	ctx := context.Background()

	_, err := f.availabilityUseCase().Execute(ctx, branch, dto.BulkAvailabilityRequest{IDs: []string{"itm_A"}, Active: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key("itm_A", loc2, dineIn): menu.OverlaySoftOff,
		key("itm_A", loc2, online): menu.OverlaySoftOff,
	}, f.itemOverlayStates(t, "itm_A"))

	_, err = f.availabilityUseCase().Execute(ctx, branch, dto.BulkAvailabilityRequest{
		IDs: []string{"itm_A"}, Active: boolPtr(true), LocationID: loc1,
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeOutsideBranch, errors.GetAppError(err).Type)
}

func TestBulkSetAvailability_Errors(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1)
	f.addItem(t, "itm_A", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	uc := f.availabilityUseCase()
	ctx := context.Background()

	tests := []struct {
		name  string
		req   dto.BulkAvailabilityRequest
		check func(error) bool
	}{
		{"missing active", dto.BulkAvailabilityRequest{IDs: []string{"itm_A"}}, errors.IsValidationError},
		{"no valid ids", dto.BulkAvailabilityRequest{IDs: []string{"bogus", "cat_X"}, Active: boolPtr(true)}, errors.IsValidationError},
		{"no owned ids", dto.BulkAvailabilityRequest{IDs: []string{"itm_Other"}, Active: boolPtr(true)}, errors.IsValidationError},
		{"bad channel", dto.BulkAvailabilityRequest{IDs: []string{"itm_A"}, Active: boolPtr(true), Channel: "drive-thru"}, errors.IsValidationError},
		{"unknown location", dto.BulkAvailabilityRequest{IDs: []string{"itm_A"}, Active: boolPtr(true), LocationID: loc3}, errors.IsNotFoundError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, editor, tt.req)
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
	assert.Empty(t, f.itemOverlayStates(t, "itm_A"))
}
