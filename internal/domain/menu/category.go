package menu

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MaxNameLength bounds item and category names.
const MaxNameLength = 200

// FoldName returns the case-folded form used to match category names.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Category groups items and can restrict them to a location and a channel.
type Category struct {
	id           string
	tenantID     string
	name         string
	placement    Placement
	channelScope ChannelScope
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCategory creates a category with a fresh id.
func NewCategory(id, tenantID, name string, placement Placement, channelScope ChannelScope) (*Category, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if err := placement.validate(); err != nil {
		return nil, err
	}
	if channelScope == "" {
		channelScope = ChannelScopeAll
	}
	if !channelScope.IsValid() {
		return nil, ErrInvalidChannel
	}

	now := time.Now().UTC()
	return &Category{
		id:           id,
		tenantID:     tenantID,
		name:         name,
		placement:    placement,
		channelScope: channelScope,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructCategory rebuilds a category from persistence
func ReconstructCategory(
	id, tenantID, name string,
	scope, locationID, channelScope string,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == "" {
		return nil, fmt.Errorf("category ID is required")
	}
	s := Scope(scope)
	cs := ChannelScope(channelScope)
	if cs == "" {
		cs = ChannelScopeAll
	}
	if !cs.IsValid() {
		return nil, fmt.Errorf("invalid channel scope %q for category %s", channelScope, id)
	}
	p := Placement{Scope: s, LocationID: locationID}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("category %s: %w", id, err)
	}
	return &Category{
		id:           id,
		tenantID:     tenantID,
		name:         name,
		placement:    p,
		channelScope: cs,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Category) ID() string                 { return c.id }
func (c *Category) TenantID() string           { return c.tenantID }
func (c *Category) Name() string               { return c.name }
func (c *Category) NameKey() string            { return FoldName(c.name) }
func (c *Category) Placement() Placement       { return c.placement }
func (c *Category) ChannelScope() ChannelScope { return c.channelScope }
func (c *Category) CreatedAt() time.Time       { return c.createdAt }
func (c *Category) UpdatedAt() time.Time       { return c.updatedAt }

// AllowsChannel reports whether items of this category may appear on ch.
func (c *Category) AllowsChannel(ch Channel) bool {
	return c.channelScope.Allows(ch)
}
