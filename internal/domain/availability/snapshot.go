package availability

import "qravy/internal/domain/menu"

// Snapshot is everything the resolver reads for one tenant.
type Snapshot struct {
	Items            []*menu.MenuItem
	Categories       map[string]*menu.Category
	LocationIDs      []string
	ItemOverlays     OverlayIndex
	CategoryOverlays OverlayIndex
}

// NewSnapshot assembles a snapshot from bulk-loaded rows.
func NewSnapshot(
	items []*menu.MenuItem,
	categories []*menu.Category,
	locations []*menu.Location,
	itemOverlays, categoryOverlays []menu.Overlay,
) *Snapshot {
	byID := make(map[string]*menu.Category, len(categories))
	for _, c := range categories {
		byID[c.ID()] = c
	}
	return &Snapshot{
		Items:            items,
		Categories:       byID,
		LocationIDs:      menu.LocationIDs(locations),
		ItemOverlays:     NewOverlayIndex(itemOverlays),
		CategoryOverlays: NewOverlayIndex(categoryOverlays),
	}
}

// CategoryOf returns the item's category, or nil when the item is
// uncategorized or its category no longer exists.
func (s *Snapshot) CategoryOf(item *menu.MenuItem) *menu.Category {
	if item.CategoryID() == "" {
		return nil
	}
	return s.Categories[item.CategoryID()]
}

// locationsFor lists the locations at which item is evaluated for an
// all-locations view. A tenant without registered locations is evaluated
// once against its baselines.
func (s *Snapshot) locationsFor(item *menu.MenuItem) []string {
	if p := item.Placement(); p.IsPinned() {
		return []string{p.LocationID}
	}
	if len(s.LocationIDs) == 0 {
		return []string{""}
	}
	return s.LocationIDs
}
