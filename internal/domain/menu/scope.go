package menu

import "strings"

// Scope says whether an item or category is tenant-wide or pinned to one location.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeLocation Scope = "location"
)

// ParseScope accepts "all", "location" or empty (all).
func ParseScope(raw string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return ScopeAll, nil
	case "location":
		return ScopeLocation, nil
	}
	return "", ErrInvalidScope
}

func (s Scope) IsValid() bool {
	return s == ScopeAll || s == ScopeLocation
}

func (s Scope) String() string {
	return string(s)
}

// Placement is a scope together with the pinned location, if any.
type Placement struct {
	Scope      Scope
	LocationID string
}

// GlobalPlacement is the tenant-wide placement.
func GlobalPlacement() Placement {
	return Placement{Scope: ScopeAll}
}

// PinnedPlacement pins to locationID.
func PinnedPlacement(locationID string) Placement {
	return Placement{Scope: ScopeLocation, LocationID: locationID}
}

func (p Placement) validate() error {
	switch p.Scope {
	case ScopeAll:
		if p.LocationID != "" {
			return ErrUnexpectedLocation
		}
	case ScopeLocation:
		if p.LocationID == "" {
			return ErrLocationRequired
		}
	default:
		return ErrInvalidScope
	}
	return nil
}

// IsPinned reports whether the placement is bound to one location.
func (p Placement) IsPinned() bool {
	return p.Scope == ScopeLocation
}

// AppliesAt reports whether a subject with this placement is resolved at locationID.
func (p Placement) AppliesAt(locationID string) bool {
	return !p.IsPinned() || p.LocationID == locationID
}

// PinnedElsewhere reports whether the placement is pinned to a location other than locationID.
func (p Placement) PinnedElsewhere(locationID string) bool {
	return p.IsPinned() && p.LocationID != locationID
}
