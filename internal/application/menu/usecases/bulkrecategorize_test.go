package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/errors"
)

func (f *fixture) recategorizeUseCase() *BulkRecategorizeUseCase {
	return NewBulkRecategorizeUseCase(f.items, f.categories, f.recorder, f.log)
}

func TestBulkRecategorize_ByName(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1)
	f.addCategory(t, "cat_Old", "Old", menu.GlobalPlacement(), menu.ChannelScopeAll)
	f.addCategory(t, "cat_New", "Seasonal", menu.GlobalPlacement(), menu.ChannelScopeAll)
	f.addItem(t, "itm_A", "cat_Old", menu.GlobalPlacement(), menu.DefaultVisibility())
	f.addItem(t, "itm_B", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	require.NoError(t, f.itemOverlays.UpsertSoft(context.Background(), tenant, []menu.Overlay{
		menu.NewOverlay("itm_A", loc1, dineIn, menu.OverlaySoftOff),
	}))

	res, err := f.recategorizeUseCase().Execute(context.Background(), editor, dto.BulkCategoryRequest{
		IDs:      []string{"itm_A", "itm_B", "itm_X"},
		Category: "SEASONAL",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"itm_A", "itm_B"}, res.Processed)
	assert.Equal(t, []string{"itm_X"}, res.Skipped)
	assert.Equal(t, int64(2), res.Affected)

	for _, id := range []string{"itm_A", "itm_B"} {
		item, err := f.items.GetByID(context.Background(), tenant, id)
		require.NoError(t, err)
		assert.Equal(t, "cat_New", item.CategoryID())
	}
	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key("itm_A", loc1, dineIn): menu.OverlaySoftOff,
	}, f.itemOverlayStates(t, "itm_A"))

	listed := findItem(f.list(t, loc1, nil), "itm_B")
	require.NotNil(t, listed)
	assert.Equal(t, "Seasonal", listed.CategoryName)
}

func TestBulkRecategorize_Errors(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "itm_A", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	uc := f.recategorizeUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, editor, dto.BulkCategoryRequest{IDs: []string{"itm_A"}})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, editor, dto.BulkCategoryRequest{IDs: []string{"itm_A"}, CategoryIDCamel: "cat_Missing"})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, editor, dto.BulkCategoryRequest{IDs: []string{"itm_A"}, Category: "Nope"})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, editor, dto.BulkCategoryRequest{IDs: []string{"itm_A"}, CategoryID: "itm_A"})
	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, f.auditCount(t))
}
