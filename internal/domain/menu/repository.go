package menu

import "context"

// Every method is scoped to a tenant; rows of other tenants are never
// returned or touched. Single-row getters return (nil, nil) when the row
// does not exist.

// LocationRepository reads a tenant's branch registry.
type LocationRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*Location, error)
	GetByID(ctx context.Context, tenantID, id string) (*Location, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, tenantID, id string) (*Category, error)
	// GetByName matches on the case-folded name.
	GetByName(ctx context.Context, tenantID, name string) (*Category, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*Category, error)
}

// MenuItemRepository persists menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	Update(ctx context.Context, item *MenuItem) error
	GetByID(ctx context.Context, tenantID, id string) (*MenuItem, error)
	GetByIDs(ctx context.Context, tenantID string, ids []string) ([]*MenuItem, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*MenuItem, error)

	// DeleteByIDs hard-deletes the items in one statement.
	DeleteByIDs(ctx context.Context, tenantID string, ids []string) (int64, error)
	// SetCategory moves the items to categoryID without touching overlays.
	SetCategory(ctx context.Context, tenantID string, ids []string, categoryID string) (int64, error)
	// SetChannelVisibility sets the baseline flag for channel c on every item.
	SetChannelVisibility(ctx context.Context, tenantID string, ids []string, c Channel, visible bool) error
}

// OverlayRepository stores per (subject, location, channel) overrides,
// at most one record per key.
type OverlayRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]Overlay, error)
	ListBySubjects(ctx context.Context, tenantID string, subjectIDs []string) ([]Overlay, error)

	// UpsertSoft writes on/off overlays owned by the subject. A key already
	// holding OverlayRemoved keeps its tombstone and origin.
	UpsertSoft(ctx context.Context, tenantID string, overlays []Overlay) error
	// UpsertRemoved writes tombstones owned by the subject, replacing any
	// soft or inherited state.
	UpsertRemoved(ctx context.Context, tenantID string, keys []OverlayKey) error

	DeleteKeys(ctx context.Context, tenantID string, keys []OverlayKey) (int64, error)
	DeleteBySubjects(ctx context.Context, tenantID string, subjectIDs []string, filter OverlayFilter) (int64, error)
}

// ItemOverlayRepository holds item availability overlays.
type ItemOverlayRepository interface {
	OverlayRepository

	// InsertInherited stores overlays copied from a category. Keys that
	// already hold an overlay are left as they are.
	InsertInherited(ctx context.Context, tenantID string, overlays []Overlay) error
	// DeleteInherited removes the overlays inherited from categoryID that
	// match filter. Overlays owned by the items are kept.
	DeleteInherited(ctx context.Context, tenantID, categoryID string, filter OverlayFilter) (int64, error)
}

// CategoryOverlayRepository holds category visibility overlays.
type CategoryOverlayRepository interface {
	OverlayRepository
}
