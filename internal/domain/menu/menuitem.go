package menu

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxDescriptionLength bounds item descriptions in runes.
const MaxDescriptionLength = 4000

// MenuItem is the item aggregate: its placement and per-channel baseline.
type MenuItem struct {
	id          string
	tenantID    string
	categoryID  string
	name        string
	description string
	price       int64
	placement   Placement
	visibility  Visibility
	createdAt   time.Time
	updatedAt   time.Time
}

// NewMenuItemParams carries the fields of a new item.
type NewMenuItemParams struct {
	ID          string
	TenantID    string
	CategoryID  string
	Name        string
	Description string
	Price       int64
	Placement   Placement
	Visibility  Visibility
}

// NewMenuItem validates p and builds an item.
func NewMenuItem(p NewMenuItemParams) (*MenuItem, error) {
	if p.TenantID == "" {
		return nil, ErrTenantRequired
	}
	if p.ID == "" {
		return nil, fmt.Errorf("menu item ID is required")
	}
	if p.Placement.Scope == "" {
		p.Placement.Scope = ScopeAll
	}
	if err := p.Placement.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &MenuItem{
		id:         p.ID,
		tenantID:   p.TenantID,
		categoryID: p.CategoryID,
		placement:  p.Placement,
		visibility: p.Visibility,
		createdAt:  now,
		updatedAt:  now,
	}
	if err := item.Rename(p.Name); err != nil {
		return nil, err
	}
	if err := item.Describe(p.Description); err != nil {
		return nil, err
	}
	if err := item.Reprice(p.Price); err != nil {
		return nil, err
	}
	item.updatedAt = now
	return item, nil
}

// ReconstructMenuItem rebuilds an item from persistence
func ReconstructMenuItem(
	id, tenantID, categoryID, name, description string,
	price int64,
	scope, locationID string,
	visibility Visibility,
	createdAt, updatedAt time.Time,
) (*MenuItem, error) {
	if id == "" {
		return nil, fmt.Errorf("menu item ID is required")
	}
	p := Placement{Scope: Scope(scope), LocationID: locationID}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("menu item %s: %w", id, err)
	}
	return &MenuItem{
		id:          id,
		tenantID:    tenantID,
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		placement:   p,
		visibility:  visibility,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (m *MenuItem) ID() string             { return m.id }
func (m *MenuItem) TenantID() string       { return m.tenantID }
func (m *MenuItem) CategoryID() string     { return m.categoryID }
func (m *MenuItem) Name() string           { return m.name }
func (m *MenuItem) Description() string    { return m.description }
func (m *MenuItem) Price() int64           { return m.price }
func (m *MenuItem) Placement() Placement   { return m.placement }
func (m *MenuItem) Visibility() Visibility { return m.visibility }
func (m *MenuItem) CreatedAt() time.Time   { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time   { return m.updatedAt }

// Rename sets a new, non-empty name.
func (m *MenuItem) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	m.name = name
	m.updatedAt = time.Now().UTC()
	return nil
}

// Describe sets the markdown description.
func (m *MenuItem) Describe(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	m.description = description
	m.updatedAt = time.Now().UTC()
	return nil
}

// Reprice sets the price in minor units.
func (m *MenuItem) Reprice(price int64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	m.price = price
	m.updatedAt = time.Now().UTC()
	return nil
}

// SetChannelVisibility changes the baseline for one channel.
func (m *MenuItem) SetChannelVisibility(c Channel, visible bool) {
	m.visibility = m.visibility.With(c, visible)
	m.updatedAt = time.Now().UTC()
}

// Recategorize moves the item to categoryID; empty means uncategorized.
func (m *MenuItem) Recategorize(categoryID string) {
	m.categoryID = categoryID
	m.updatedAt = time.Now().UTC()
}
