package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/services/markdown"
)

func TestUpdateMenuItem_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	f.addLocations(t, loc1)
	f.addItem(t, "itm_Soup", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	ctx := context.Background()
	require.NoError(t, f.itemOverlays.UpsertSoft(ctx, tenant, []menu.Overlay{menu.NewOverlay("itm_Soup", loc1, dineIn, menu.OverlaySoftOff)}))

	uc := NewUpdateMenuItemUseCase(f.items, markdown.NewMarkdownService(), f.recorder, f.log)
	name := "Tomato soup"
	updated, err := uc.Execute(ctx, editor, "itm_Soup", dto.UpdateMenuItemRequest{
		Name:       &name,
		Visibility: &dto.VisibilityInput{Online: boolPtr(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tomato soup", updated.Name)
	assert.Equal(t, int64(900), updated.Price)
	assert.True(t, updated.Visibility.DineIn)
	assert.False(t, updated.Visibility.Online)

	stored, err := f.items.GetByID(ctx, tenant, "itm_Soup")
	require.NoError(t, err)
	assert.Equal(t, "Tomato soup", stored.Name())
	assert.False(t, stored.Visibility().Online)

	assert.Equal(t, map[menu.OverlayKey]menu.OverlayState{
		key("itm_Soup", loc1, dineIn): menu.OverlaySoftOff,
	}, f.itemOverlayStates(t, "itm_Soup"))
	assert.Equal(t, int64(1), f.auditCount(t))
}

func TestUpdateMenuItem_Errors(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "itm_Soup", "", menu.GlobalPlacement(), menu.DefaultVisibility())
	uc := NewUpdateMenuItemUseCase(f.items, markdown.NewMarkdownService(), f.recorder, f.log)

	_, err := uc.Execute(context.Background(), editor, "itm_Missing", dto.UpdateMenuItemRequest{})
	assert.True(t, errors.IsNotFoundError(err))

	negative := int64(-5)
	_, err = uc.Execute(context.Background(), editor, "itm_Soup", dto.UpdateMenuItemRequest{Price: &negative})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateMenuItem_AuditFailureDoesNotFailUpdate(t *testing.T) {
	item, err := menu.NewMenuItem(menu.NewMenuItemParams{ID: "itm_Tea", TenantID: tenant, Name: "Tea", Visibility: menu.DefaultVisibility()})
	require.NoError(t, err)

	items := new(mockMenuItemRepository)
	items.On("GetByID", mock.Anything, tenant, "itm_Tea").Return(item, nil)
	items.On("Update", mock.Anything, item).Return(nil)

	auditRepo := new(mockAuditRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(stderrors.New("audit table locked"))

	cache := newFakeCache()
	log := testLogger()
	uc := NewUpdateMenuItemUseCase(items, markdown.NewMarkdownService(), NewChangeRecorder(auditRepo, cache, log), log)

	price := int64(300)
	updated, err := uc.Execute(context.Background(), editor, "itm_Tea", dto.UpdateMenuItemRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(300), updated.Price)
	assert.Equal(t, 1, cache.invalidations)

	items.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestUpdateMenuItem_StoreFailureIsRetryable(t *testing.T) {
	items := new(mockMenuItemRepository)
	items.On("GetByID", mock.Anything, tenant, "itm_Tea").Return(nil, stderrors.New("connection refused"))

	log := testLogger()
	uc := NewUpdateMenuItemUseCase(items, markdown.NewMarkdownService(), NewChangeRecorder(new(mockAuditRepository), newFakeCache(), log), log)

	_, err := uc.Execute(context.Background(), editor, "itm_Tea", dto.UpdateMenuItemRequest{})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	assert.True(t, appErr.Retryable)
	assert.NotContains(t, appErr.Error(), "connection refused")
}
