package menu

import "strings"

// OverlayState is the value of a per-location, per-channel override.
// OverlayRemoved is a tombstone that soft writes never replace.
type OverlayState string

const (
	OverlaySoftOn  OverlayState = "on"
	OverlaySoftOff OverlayState = "off"
	OverlayRemoved OverlayState = "removed"
)

// ParseOverlayState parses "on", "off" or "removed".
func ParseOverlayState(raw string) (OverlayState, error) {
	s := OverlayState(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidOverlayState
	}
	return s, nil
}

// SoftState maps an on/off toggle onto a soft overlay state.
func SoftState(active bool) OverlayState {
	if active {
		return OverlaySoftOn
	}
	return OverlaySoftOff
}

func (s OverlayState) IsValid() bool {
	return s == OverlaySoftOn || s == OverlaySoftOff || s == OverlayRemoved
}

// IsSoft reports whether the state is an on/off override rather than a tombstone.
func (s OverlayState) IsSoft() bool {
	return s == OverlaySoftOn || s == OverlaySoftOff
}

func (s OverlayState) String() string {
	return string(s)
}

// OverlayKey identifies one overlay record. SubjectID is an item or a category id.
type OverlayKey struct {
	SubjectID  string
	LocationID string
	Channel    Channel
}

// Overlay is a stored override at a key.
type Overlay struct {
	OverlayKey
	State OverlayState
	// Origin is the category an item overlay was inherited from when the
	// item was created. Empty for overlays written for the subject itself.
	Origin string
}

// Inherited reports whether the overlay was copied from a category.
func (o Overlay) Inherited() bool {
	return o.Origin != ""
}

// NewOverlay builds an overlay at (subject, location, channel).
func NewOverlay(subjectID, locationID string, c Channel, state OverlayState) Overlay {
	return Overlay{
		OverlayKey: OverlayKey{SubjectID: subjectID, LocationID: locationID, Channel: c},
		State:      state,
	}
}

// OverlayFilter narrows bulk overlay deletes. Empty fields match everything.
type OverlayFilter struct {
	LocationIDs []string
	Channels    []Channel
	States      []OverlayState
}

// Inherit copies category overlays onto an item, keeping the category as origin.
func Inherit(itemID string, categoryOverlays []Overlay) []Overlay {
	out := make([]Overlay, 0, len(categoryOverlays))
	for _, o := range categoryOverlays {
		out = append(out, Overlay{
			OverlayKey: OverlayKey{SubjectID: itemID, LocationID: o.LocationID, Channel: o.Channel},
			State:      o.State,
			Origin:     o.SubjectID,
		})
	}
	return out
}
