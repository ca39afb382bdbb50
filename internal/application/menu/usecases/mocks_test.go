package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
)

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, string, *menu.Channel) ([]byte, int64, bool) {
	return nil, -1, false
}
func (NoopCache) Set(context.Context, string, int64, string, *menu.Channel, []byte) {}
func (NoopCache) Invalidate(context.Context, string)                                {}

// fakeCache keeps payloads in memory under a version that Invalidate bumps.
// onMiss, when set, runs after a miss is reported.
type fakeCache struct {
	mu            sync.Mutex
	entries       map[string][]byte
	version       int64
	invalidations int
	onMiss        func()
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) key(tenantID string, version int64, locationID string, channel *menu.Channel) string {
	ch := "all"
	if channel != nil {
		ch = channel.String()
	}
	return fmt.Sprintf("%s|%d|%s|%s", tenantID, version, locationID, ch)
}

func (c *fakeCache) Get(_ context.Context, tenantID, locationID string, channel *menu.Channel) ([]byte, int64, bool) {
	c.mu.Lock()
	version := c.version
	p, ok := c.entries[c.key(tenantID, version, locationID, channel)]
	onMiss := c.onMiss
	c.mu.Unlock()
	if !ok && onMiss != nil {
		onMiss()
	}
	return p, version, ok
}

func (c *fakeCache) Set(_ context.Context, tenantID string, version int64, locationID string, channel *menu.Channel, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.key(tenantID, version, locationID, channel)] = payload
}

func (c *fakeCache) Invalidate(_ context.Context, _ string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	c.version++
}

// mockMenuItemRepository is a testify mock for failure paths.
type mockMenuItemRepository struct {
	mock.Mock
}

func (m *mockMenuItemRepository) Create(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockMenuItemRepository) GetByID(ctx context.Context, tenantID, id string) (*menu.MenuItem, error) {
	args := m.Called(ctx, tenantID, id)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

func (m *mockMenuItemRepository) GetByIDs(ctx context.Context, tenantID string, ids []string) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, tenantID, ids)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

func (m *mockMenuItemRepository) ListByTenant(ctx context.Context, tenantID string) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, tenantID)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

func (m *mockMenuItemRepository) DeleteByIDs(ctx context.Context, tenantID string, ids []string) (int64, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMenuItemRepository) SetCategory(ctx context.Context, tenantID string, ids []string, categoryID string) (int64, error) {
	args := m.Called(ctx, tenantID, ids, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMenuItemRepository) SetChannelVisibility(ctx context.Context, tenantID string, ids []string, c menu.Channel, visible bool) error {
	return m.Called(ctx, tenantID, ids, c, visible).Error(0)
}

// mockAuditRepository is a testify mock for the audit log.
type mockAuditRepository struct {
	mock.Mock
}

func (m *mockAuditRepository) Create(ctx context.Context, entry *audit.Entry) error {
	return m.Called(ctx, entry).Error(0)
}
