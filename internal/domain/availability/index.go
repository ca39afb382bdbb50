// Package availability resolves which menu items are listed and orderable at
// a location and channel, given item baselines, category restrictions and the
// overlay records layered on top of them.
package availability

import "qravy/internal/domain/menu"

// OverlayIndex answers "what overlay holds at (subject, location, channel)"
// in constant time. Build it once per request from bulk-loaded overlays.
type OverlayIndex map[string]map[menu.Channel]map[string]menu.OverlayState

// NewOverlayIndex indexes overlays. When the input holds duplicate keys the
// tombstone wins, then the last record.
func NewOverlayIndex(overlays []menu.Overlay) OverlayIndex {
	ix := make(OverlayIndex)
	for _, o := range overlays {
		byChannel, ok := ix[o.SubjectID]
		if !ok {
			byChannel = make(map[menu.Channel]map[string]menu.OverlayState, len(menu.AllChannels))
			ix[o.SubjectID] = byChannel
		}
		byLocation, ok := byChannel[o.Channel]
		if !ok {
			byLocation = make(map[string]menu.OverlayState)
			byChannel[o.Channel] = byLocation
		}
		if byLocation[o.LocationID] == menu.OverlayRemoved {
			continue
		}
		byLocation[o.LocationID] = o.State
	}
	return ix
}

// Lookup returns the overlay at the key, if any.
func (ix OverlayIndex) Lookup(subjectID, locationID string, c menu.Channel) (menu.OverlayState, bool) {
	state, ok := ix[subjectID][c][locationID]
	return state, ok
}

// Keys returns the overlays held for subjectID, in no particular order.
func (ix OverlayIndex) Keys(subjectID string) []menu.Overlay {
	var out []menu.Overlay
	for c, byLocation := range ix[subjectID] {
		for loc, state := range byLocation {
			out = append(out, menu.NewOverlay(subjectID, loc, c, state))
		}
	}
	return out
}
