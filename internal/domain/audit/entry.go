// Package audit records who changed what on a tenant's menu.
package audit

import (
	"context"
	"errors"
	"time"
)

// Action names a recorded mutation.
type Action string

const (
	ActionItemCreate              Action = "menu_item.create"
	ActionItemUpdate              Action = "menu_item.update"
	ActionItemDelete              Action = "menu_item.delete"
	ActionBulkAvailability        Action = "menu_item.bulk_availability"
	ActionBulkDelete              Action = "menu_item.bulk_delete"
	ActionBulkRecategorize        Action = "menu_item.bulk_recategorize"
	ActionCategoryVisibilitySet   Action = "category.visibility_set"
	ActionCategoryVisibilityClear Action = "category.visibility_clear"
)

// Actor is the authenticated principal behind a mutation.
type Actor struct {
	UserID     string
	Role       string
	LocationID string
}

// Entry is one audit record. Before and After are JSON-serializable snapshots.
type Entry struct {
	ID         string
	TenantID   string
	Actor      Actor
	Action     Action
	SubjectIDs []string
	Before     any
	After      any
	CreatedAt  time.Time
}

var ErrTenantRequired = errors.New("audit entry requires a tenant")

// NewEntry builds an entry stamped with the current time.
func NewEntry(id, tenantID string, actor Actor, action Action, subjectIDs []string, before, after any) (*Entry, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	return &Entry{
		ID:         id,
		TenantID:   tenantID,
		Actor:      actor,
		Action:     action,
		SubjectIDs: subjectIDs,
		Before:     before,
		After:      after,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Repository appends audit entries.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
}
