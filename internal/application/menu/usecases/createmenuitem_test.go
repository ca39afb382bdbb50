package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/services/markdown"
)

func (f *fixture) createUseCase() *CreateMenuItemUseCase {
	return NewCreateMenuItemUseCase(f.items, f.categories, f.locations, f.itemOverlays, f.categoryOverlays,
		markdown.NewMarkdownService(), f.recorder, f.log)
}

func TestCreateMenuItem_CategoryChannelScope(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2)
	f.addCategory(t, "cat_Drinks", "Drinks", menu.GlobalPlacement(), menu.ChannelScopeDineIn)

	created, err := f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:       "Lemonade",
		Price:      450,
		CategoryID: "cat_Drinks",
	})
	require.NoError(t, err)
	assert.True(t, created.Visibility.DineIn)
	assert.False(t, created.Visibility.Online)
	assert.Equal(t, "cat_Drinks", created.CategoryID)
	assert.Equal(t, "all", created.Scope)

	assert.Nil(t, findItem(f.list(t, loc1, &online), created.ID))
	listed := findItem(f.list(t, loc1, &dineIn), created.ID)
	require.NotNil(t, listed)
	assert.Equal(t, dto.StatusAvailable, listed.Status)
	assert.False(t, listed.Hidden)

	assert.Equal(t, int64(1), f.auditCount(t))
	assert.Equal(t, 1, f.cache.invalidations)
}

func TestCreateMenuItem_CategoryByNameAndPlacement(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2)
	f.addCategory(t, "cat_Brunch", "Brunch Specials", menu.PinnedPlacement(loc2), menu.ChannelScopeAll)

	created, err := f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:       "Eggs",
		Category:   "  brunch SPECIALS ",
		LocationID: loc1,
	})
	require.NoError(t, err)
	assert.Equal(t, "cat_Brunch", created.CategoryID)
	assert.Equal(t, "location", created.Scope)
	assert.Equal(t, loc2, created.LocationID)
}

func TestCreateMenuItem_ChannelRestrictsBaseline(t *testing.T) {
	f := newFixture(t)

	created, err := f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:    "Delivery box",
		Channel: "online",
	})
	require.NoError(t, err)
	assert.False(t, created.Visibility.DineIn)
	assert.True(t, created.Visibility.Online)

	created, err = f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:       "Table only",
		Visibility: &dto.VisibilityInput{Online: boolPtr(false)},
	})
	require.NoError(t, err)
	assert.True(t, created.Visibility.DineIn)
	assert.False(t, created.Visibility.Online)
}

func TestCreateMenuItem_SanitizesText(t *testing.T) {
	f := newFixture(t)

	created, err := f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:        "<b>Fish & Chips</b>",
		Description: "Crispy <script>alert(1)</script>**cod**",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fish & Chips", created.Name)
	assert.Equal(t, "Crispy **cod**", created.Description)
}

func TestCreateMenuItem_IncludeLocations(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2, loc3)

	created, err := f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:                    "Seasonal",
		IncludeLocationIDsCamel: []string{loc1, "loc_Unknown"},
	})
	require.NoError(t, err)

	states := f.itemOverlayStates(t, created.ID)
	assert.Len(t, states, 4)
	for _, loc := range []string{loc2, loc3} {
		for _, c := range menu.AllChannels {
			assert.Equal(t, menu.OverlaySoftOff, states[key(created.ID, loc, c)])
		}
	}

	assert.Equal(t, dto.StatusAvailable, findItem(f.list(t, loc1, nil), created.ID).Status)
	atL2 := findItem(f.list(t, loc2, nil), created.ID)
	require.NotNil(t, atL2)
	assert.Equal(t, dto.StatusUnavailable, atL2.Status)
	assert.True(t, atL2.Hidden)
}

func TestCreateMenuItem_ExcludeLocations(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2)

	created, err := f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:               "Spicy wings",
		ExcludeLocationIDs: []string{loc2, "garbage"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key(created.ID, loc2, dineIn): menu.OverlayRemoved,
		key(created.ID, loc2, online): menu.OverlayRemoved,
	}, f.itemOverlayStates(t, created.ID))
	assert.Nil(t, findItem(f.list(t, loc2, nil), created.ID))

	created, err = f.createUseCase().Execute(context.Background(), editor, dto.CreateMenuItemRequest{
		Name:                        "Burger",
		Channel:                     "dine-in",
		ExcludeChannelAtLocationIDs: []string{loc1},
	})
	require.NoError(t, err)
	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key(created.ID, loc1, dineIn): menu.OverlayRemoved,
	}, f.itemOverlayStates(t, created.ID))
}

func TestCreateMenuItem_InheritsCategoryOverlays(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1, loc2)
	f.addCategory(t, "cat_Mains", "Mains", menu.GlobalPlacement(), menu.ChannelScopeAll)
	ctx := context.Background()
	require.NoError(t, f.categoryOverlays.UpsertRemoved(ctx, tenant, []menu.OverlayKey{key("cat_Mains", loc1, dineIn)}))
	require.NoError(t, f.categoryOverlays.UpsertSoft(ctx, tenant, []menu.Overlay{
		menu.NewOverlay("cat_Mains", loc2, online, menu.OverlaySoftOff),
		menu.NewOverlay("cat_Mains", loc2, dineIn, menu.OverlaySoftOn),
	}))

	created, err := f.createUseCase().Execute(ctx, editor, dto.CreateMenuItemRequest{Name: "Steak", CategoryIDCamel: "cat_Mains"})
	require.NoError(t, err)

	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key(created.ID, loc1, dineIn): menu.OverlayRemoved,
		key(created.ID, loc2, online): menu.OverlaySoftOff,
	}, f.itemOverlayStates(t, created.ID))
}

func TestCreateMenuItem_Errors(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateMenuItemRequest
		wantCheck func(error) bool
	}{
		{
			name:      "include and exclude together",
			req:       dto.CreateMenuItemRequest{Name: "X", IncludeLocationIDs: []string{loc1}, ExcludeLocationIDs: []string{loc2}},
			wantCheck: errors.IsValidationError,
		},
		{
			name:      "channel exclusion without channel",
			req:       dto.CreateMenuItemRequest{Name: "X", ExcludeChannelAtLocationIDs: []string{loc1}},
			wantCheck: errors.IsValidationError,
		},
		{
			name:      "bad channel",
			req:       dto.CreateMenuItemRequest{Name: "X", Channel: "drive-thru"},
			wantCheck: errors.IsValidationError,
		},
		{
			name:      "blank name",
			req:       dto.CreateMenuItemRequest{Name: "<i></i>"},
			wantCheck: errors.IsValidationError,
		},
		{
			name:      "negative price",
			req:       dto.CreateMenuItemRequest{Name: "X", Price: -1},
			wantCheck: errors.IsValidationError,
		},
		{
			name:      "unknown category id",
			req:       dto.CreateMenuItemRequest{Name: "X", CategoryID: "cat_Nope"},
			wantCheck: errors.IsNotFoundError,
		},
		{
			name:      "unknown category name",
			req:       dto.CreateMenuItemRequest{Name: "X", Category: "Desserts"},
			wantCheck: errors.IsNotFoundError,
		},
		{
			name:      "location of another tenant",
			req:       dto.CreateMenuItemRequest{Name: "X", LocationID: "loc_Elsewhere"},
			wantCheck: errors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.addLocations(t, loc1, loc2)

			_, err := f.createUseCase().Execute(context.Background(), editor, tt.req)
			require.Error(t, err)
			assert.True(t, tt.wantCheck(err), err.Error())

			var n int64
			require.NoError(t, f.db.Model(&models.MenuItemModel{}).Count(&n).Error)
			assert.Zero(t, n)
			assert.Zero(t, f.auditCount(t))
		})
	}
}
