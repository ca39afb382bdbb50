package usecases

import (
	"context"

	"qravy/internal/domain/menu"
	"qravy/internal/shared/logger"
)

// Delete effects reported per item.
const (
	EffectDeleted       = "deleted"
	EffectChannelHidden = "channel_hidden"
	EffectTombstoned    = "tombstoned"
	EffectNoop          = "noop"
)

// deletePlan collects the writes of a scoped delete over many items so
// that each kind of write is issued as one batch.
type deletePlan struct {
	hardDelete   []string
	hideChannel  map[menu.Channel][]string
	pinnedHidden map[menu.Channel][]string
	deleteKeys   []menu.OverlayKey
	tombstones   []menu.OverlayKey
}

func newDeletePlan() *deletePlan {
	return &deletePlan{
		hideChannel:  make(map[menu.Channel][]string),
		pinnedHidden: make(map[menu.Channel][]string),
	}
}

// add plans the delete of item at the optional location and channel:
//
//	neither:           hard delete
//	channel only:      baseline off for the channel, its overlays purged
//	location only:     pinned there -> hard delete; global -> tombstones on every channel
//	location+channel:  pinned there -> baseline off and overlay dropped; global -> tombstone
//
// Items pinned to another location are left alone.
func (p *deletePlan) add(item *menu.MenuItem, locationID string, channel *menu.Channel) string {
	placement := item.Placement()
	switch {
	case locationID == "" && channel == nil:
		p.hardDelete = append(p.hardDelete, item.ID())
		return EffectDeleted

	case locationID == "":
		p.hideChannel[*channel] = append(p.hideChannel[*channel], item.ID())
		return EffectChannelHidden

	case placement.PinnedElsewhere(locationID):
		return EffectNoop

	case channel == nil:
		if placement.IsPinned() {
			p.hardDelete = append(p.hardDelete, item.ID())
			return EffectDeleted
		}
		for _, c := range menu.AllChannels {
			p.tombstones = append(p.tombstones, menu.OverlayKey{SubjectID: item.ID(), LocationID: locationID, Channel: c})
		}
		return EffectTombstoned

	default:
		key := menu.OverlayKey{SubjectID: item.ID(), LocationID: locationID, Channel: *channel}
		if placement.IsPinned() {
			p.pinnedHidden[*channel] = append(p.pinnedHidden[*channel], item.ID())
			p.deleteKeys = append(p.deleteKeys, key)
			return EffectChannelHidden
		}
		p.tombstones = append(p.tombstones, key)
		return EffectTombstoned
	}
}

// apply issues the planned writes. Every step is idempotent, so a failed
// apply can be retried as a whole. Overlays of hard-deleted items are purged
// before the items so that a retry still finds the items.
func (p *deletePlan) apply(ctx context.Context, tenantID string, items menu.MenuItemRepository, overlays menu.ItemOverlayRepository, log logger.Interface) error {
	if err := overlays.UpsertRemoved(ctx, tenantID, p.tombstones); err != nil {
		return storeError(log, "failed to write tombstones", err, "tenant_id", tenantID, "count", len(p.tombstones))
	}

	for _, c := range menu.AllChannels {
		ids := p.hideChannel[c]
		if len(ids) == 0 {
			continue
		}
		if err := items.SetChannelVisibility(ctx, tenantID, ids, c, false); err != nil {
			return storeError(log, "failed to hide channel", err, "tenant_id", tenantID, "channel", c)
		}
		if _, err := overlays.DeleteBySubjects(ctx, tenantID, ids, menu.OverlayFilter{Channels: []menu.Channel{c}}); err != nil {
			return storeError(log, "failed to purge channel overlays", err, "tenant_id", tenantID, "channel", c)
		}
	}

	for _, c := range menu.AllChannels {
		ids := p.pinnedHidden[c]
		if len(ids) == 0 {
			continue
		}
		if err := items.SetChannelVisibility(ctx, tenantID, ids, c, false); err != nil {
			return storeError(log, "failed to hide channel", err, "tenant_id", tenantID, "channel", c)
		}
	}
	if len(p.deleteKeys) > 0 {
		if _, err := overlays.DeleteKeys(ctx, tenantID, p.deleteKeys); err != nil {
			return storeError(log, "failed to delete overlays", err, "tenant_id", tenantID)
		}
	}

	if len(p.hardDelete) > 0 {
		if _, err := overlays.DeleteBySubjects(ctx, tenantID, p.hardDelete, menu.OverlayFilter{}); err != nil {
			return storeError(log, "failed to purge overlays of deleted items", err, "tenant_id", tenantID)
		}
		if _, err := items.DeleteByIDs(ctx, tenantID, p.hardDelete); err != nil {
			return storeError(log, "failed to delete menu items", err, "tenant_id", tenantID, "count", len(p.hardDelete))
		}
	}
	return nil
}
