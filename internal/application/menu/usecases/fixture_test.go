package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/infrastructure/repository"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/services/markdown"
)

const (
	tenant = "tnt_A"
	loc1   = "loc_L1"
	loc2   = "loc_L2"
	loc3   = "loc_L3"
)

var (
	dineIn = menu.ChannelDineIn
	online = menu.ChannelOnline

	editor = Caller{TenantID: tenant, UserID: "usr_editor", Role: authorization.RoleEditor}
)

func boolPtr(b bool) *bool { return &b }

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fixture wires every use case to sqlite-backed repositories.
type fixture struct {
	db               *gorm.DB
	items            menu.MenuItemRepository
	categories       menu.CategoryRepository
	locations        menu.LocationRepository
	itemOverlays     menu.ItemOverlayRepository
	categoryOverlays menu.CategoryOverlayRepository
	cache            *fakeCache
	recorder         *ChangeRecorder
	log              logger.Interface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&models.LocationModel{},
		&models.CategoryModel{},
		&models.MenuItemModel{},
		&models.ItemAvailabilityOverlayModel{},
		&models.CategoryVisibilityOverlayModel{},
		&models.AuditLogModel{},
	))

	log := testLogger()
	f := &fixture{
		db:               gdb,
		items:            repository.NewMenuItemRepository(gdb, log),
		categories:       repository.NewCategoryRepository(gdb, log),
		locations:        repository.NewLocationRepository(gdb, log),
		itemOverlays:     repository.NewItemOverlayRepository(gdb, log),
		categoryOverlays: repository.NewCategoryOverlayRepository(gdb, log),
		cache:            newFakeCache(),
		log:              log,
	}
	f.recorder = NewChangeRecorder(repository.NewAuditLogRepository(gdb, log), f.cache, log)
	return f
}

func (f *fixture) addLocations(t *testing.T, ids ...string) {
	t.Helper()
	for i, id := range ids {
		require.NoError(t, f.db.Create(&models.LocationModel{
			ID:        id,
			TenantID:  tenant,
			Name:      "Branch " + id,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}).Error)
	}
}

func (f *fixture) addCategory(t *testing.T, id, name string, p menu.Placement, cs menu.ChannelScope) *menu.Category {
	t.Helper()
	c, err := menu.NewCategory(id, tenant, name, p, cs)
	require.NoError(t, err)
	require.NoError(t, f.categories.Create(context.Background(), c))
	return c
}

func (f *fixture) addItem(t *testing.T, id, categoryID string, p menu.Placement, v menu.Visibility) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(menu.NewMenuItemParams{
		ID:         id,
		TenantID:   tenant,
		CategoryID: categoryID,
		Name:       "Item " + id,
		Price:      900,
		Placement:  p,
		Visibility: v,
	})
	require.NoError(t, err)
	require.NoError(t, f.items.Create(context.Background(), item))
	return item
}

func (f *fixture) itemOverlayStates(t *testing.T, itemID string) map[menu.OverlayKey]menu.OverlayState {
	t.Helper()
	overlays, err := f.itemOverlays.ListBySubjects(context.Background(), tenant, []string{itemID})
	require.NoError(t, err)
	out := make(map[menu.OverlayKey]menu.OverlayState, len(overlays))
	for _, o := range overlays {
		out[o.OverlayKey] = o.State
	}
	return out
}

func (f *fixture) auditCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.AuditLogModel{}).Count(&n).Error)
	return n
}

func (f *fixture) listUseCase() *ListMenuItemsUseCase {
	return NewListMenuItemsUseCase(f.items, f.categories, f.locations, f.itemOverlays, f.categoryOverlays,
		NoopCache{}, markdown.NewMarkdownService(), f.log)
}

// list resolves without the cache so each call sees the store.
func (f *fixture) list(t *testing.T, locationID string, channel *menu.Channel) *dto.MenuListDTO {
	t.Helper()
	q := ListMenuItemsQuery{LocationID: locationID}
	if channel != nil {
		q.Channel = channel.String()
	}
	out, err := f.listUseCase().Execute(context.Background(), editor, q)
	require.NoError(t, err)
	return out
}

func findItem(list *dto.MenuListDTO, id string) *dto.ResolvedMenuItemDTO {
	for i := range list.Items {
		if list.Items[i].ID == id {
			return &list.Items[i]
		}
	}
	return nil
}

func key(subject, location string, c menu.Channel) menu.OverlayKey {
	return menu.OverlayKey{SubjectID: subject, LocationID: location, Channel: c}
}
