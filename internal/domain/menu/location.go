package menu

import (
	"fmt"
	"time"
)

// Location is a physical branch of a tenant. Locations are read-only here.
type Location struct {
	id        string
	tenantID  string
	name      string
	createdAt time.Time
}

// ReconstructLocation rebuilds a location from persistence
func ReconstructLocation(id, tenantID, name string, createdAt time.Time) (*Location, error) {
	if id == "" {
		return nil, fmt.Errorf("location ID is required")
	}
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	return &Location{id: id, tenantID: tenantID, name: name, createdAt: createdAt}, nil
}

func (l *Location) ID() string           { return l.id }
func (l *Location) TenantID() string     { return l.tenantID }
func (l *Location) Name() string         { return l.name }
func (l *Location) CreatedAt() time.Time { return l.createdAt }

// LocationIDs returns the ids of locs in order.
func LocationIDs(locs []*Location) []string {
	ids := make([]string, 0, len(locs))
	for _, l := range locs {
		ids = append(ids, l.id)
	}
	return ids
}
