package availability

import "qravy/internal/domain/menu"

// Outcome is the resolution of one item at one (location, channel).
type Outcome uint8

const (
	Excluded Outcome = iota
	Unavailable
	Available
)

// Listed reports whether the item appears at all.
func (o Outcome) Listed() bool {
	return o != Excluded
}

func (o Outcome) String() string {
	switch o {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	default:
		return "excluded"
	}
}

// View selects what to resolve. An empty LocationID means every location,
// a nil Channel every channel.
type View struct {
	LocationID string
	Channel    *menu.Channel
}

// ChannelState is the aggregated outcome for one channel.
type ChannelState struct {
	Channel   menu.Channel
	Listed    bool
	Available bool
}

// Resolved is an item that is listed somewhere within the view.
type Resolved struct {
	Item      *menu.MenuItem
	Category  *menu.Category
	Available bool
	Channels  []ChannelState
}

// Resolve returns every item listed within v, in snapshot order.
// Presence anywhere in the view lists the item; availability anywhere
// makes it available.
func Resolve(s *Snapshot, v View) []Resolved {
	channels := menu.TargetChannels(v.Channel)
	out := make([]Resolved, 0, len(s.Items))

	for _, item := range s.Items {
		locations := s.locationsFor(item)
		if v.LocationID != "" {
			locations = []string{v.LocationID}
		}

		r := Resolved{Item: item, Category: s.CategoryOf(item)}
		listed := false
		for _, c := range channels {
			cs := ChannelState{Channel: c}
			for _, loc := range locations {
				switch ResolveCell(s, item, loc, c) {
				case Available:
					cs.Listed, cs.Available = true, true
				case Unavailable:
					cs.Listed = true
				}
				if cs.Available {
					break
				}
			}
			listed = listed || cs.Listed
			r.Available = r.Available || cs.Available
			r.Channels = append(r.Channels, cs)
		}
		if listed {
			out = append(out, r)
		}
	}
	return out
}

// ResolveCell applies the layered rules for item at (locationID, c):
// category channel scope and placement, category tombstone, item tombstone,
// baseline, category soft-off, then the item's soft overlay.
func ResolveCell(s *Snapshot, item *menu.MenuItem, locationID string, c menu.Channel) Outcome {
	if !item.Placement().AppliesAt(locationID) {
		return Excluded
	}

	category := s.CategoryOf(item)
	var categoryState menu.OverlayState
	if category != nil {
		if !category.AllowsChannel(c) || !category.Placement().AppliesAt(locationID) {
			return Excluded
		}
		categoryState, _ = s.CategoryOverlays.Lookup(category.ID(), locationID, c)
		if categoryState == menu.OverlayRemoved {
			return Excluded
		}
	}

	itemState, hasItemState := s.ItemOverlays.Lookup(item.ID(), locationID, c)
	if itemState == menu.OverlayRemoved {
		return Excluded
	}

	baseline := item.Visibility().For(c)
	if !baseline && itemState != menu.OverlaySoftOn {
		return Excluded
	}

	if categoryState == menu.OverlaySoftOff {
		return Unavailable
	}

	available := baseline
	if hasItemState {
		available = itemState == menu.OverlaySoftOn
	}
	if available {
		return Available
	}
	return Unavailable
}
