package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/mappers"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/db"
	"qravy/internal/shared/logger"
)

// OverlayRepositoryImpl implements menu.OverlayRepository over one overlay
// table. M is that table's row model.
type OverlayRepositoryImpl[M any] struct {
	db     *gorm.DB
	mapper mappers.OverlayMapper[M]
	logger logger.Interface
}

// NewItemOverlayRepository stores item availability overlays.
func NewItemOverlayRepository(gdb *gorm.DB, logger logger.Interface) menu.ItemOverlayRepository {
	return &OverlayRepositoryImpl[models.ItemAvailabilityOverlayModel]{
		db:     gdb,
		mapper: mappers.NewItemOverlayMapper(),
		logger: logger.With("overlay", "item"),
	}
}

// NewCategoryOverlayRepository stores category visibility overlays.
func NewCategoryOverlayRepository(gdb *gorm.DB, logger logger.Interface) menu.CategoryOverlayRepository {
	return &OverlayRepositoryImpl[models.CategoryVisibilityOverlayModel]{
		db:     gdb,
		mapper: mappers.NewCategoryOverlayMapper(),
		logger: logger.With("overlay", "category"),
	}
}

func (r *OverlayRepositoryImpl[M]) subject() string {
	return r.mapper.SubjectColumn()
}

func (r *OverlayRepositoryImpl[M]) keyColumns() []clause.Column {
	return []clause.Column{{Name: "tenant_id"}, {Name: r.subject()}, {Name: "location_id"}, {Name: "channel"}}
}

// ListByTenant loads every overlay of the tenant in one query.
func (r *OverlayRepositoryImpl[M]) ListByTenant(ctx context.Context, tenantID string) ([]menu.Overlay, error) {
	var rows []*M
	if err := r.db.WithContext(ctx).Model(new(M)).Scopes(db.Tenant(tenantID)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list overlays", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list overlays: %w", err)
	}
	return r.toOverlays(rows)
}

// ListBySubjects loads the overlays of the given items or categories.
func (r *OverlayRepositoryImpl[M]) ListBySubjects(ctx context.Context, tenantID string, subjectIDs []string) ([]menu.Overlay, error) {
	var rows []*M
	for _, chunk := range db.Chunk(subjectIDs, constants.DefaultBatchSize) {
		var part []*M
		err := r.db.WithContext(ctx).Model(new(M)).
			Scopes(db.Tenant(tenantID)).
			Where(r.subject()+" IN ?", chunk).
			Find(&part).Error
		if err != nil {
			r.logger.Errorw("failed to list overlays by subject", "tenant_id", tenantID, "count", len(chunk), "error", err)
			return nil, fmt.Errorf("failed to list overlays: %w", err)
		}
		rows = append(rows, part...)
	}
	return r.toOverlays(rows)
}

func (r *OverlayRepositoryImpl[M]) toOverlays(rows []*M) ([]menu.Overlay, error) {
	out := make([]menu.Overlay, 0, len(rows))
	for _, row := range rows {
		o, err := r.mapper.ToOverlay(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// UpsertSoft writes on/off overlays keyed by (subject, location, channel).
// The update branch keeps an existing tombstone, and its origin, in place.
func (r *OverlayRepositoryImpl[M]) UpsertSoft(ctx context.Context, tenantID string, overlays []menu.Overlay) error {
	byState := make(map[menu.OverlayState][]menu.Overlay, 2)
	for _, o := range dedupeOverlays(overlays) {
		if !o.State.IsSoft() {
			return fmt.Errorf("upsert soft overlay: state %q is not a soft state", o.State)
		}
		o.Origin = ""
		byState[o.State] = append(byState[o.State], o)
	}

	now := time.Now().UTC()
	for _, state := range []menu.OverlayState{menu.OverlaySoftOn, menu.OverlaySoftOff} {
		var updates clause.Set
		// MySQL applies assignments left to right, so origin must be read
		// before state is rewritten.
		if r.mapper.TracksOrigin() {
			updates = append(updates, clause.Assignment{
				Column: clause.Column{Name: "origin"},
				Value:  gorm.Expr("CASE WHEN state = ? THEN origin ELSE ? END", menu.OverlayRemoved.String(), ""),
			})
		}
		updates = append(updates,
			clause.Assignment{
				Column: clause.Column{Name: "state"},
				Value:  gorm.Expr("CASE WHEN state = ? THEN state ELSE ? END", menu.OverlayRemoved.String(), state.String()),
			},
			clause.Assignment{Column: clause.Column{Name: "updated_at"}, Value: now},
		)
		guarded := clause.OnConflict{Columns: r.keyColumns(), DoUpdates: updates}
		if err := r.insert(ctx, tenantID, byState[state], guarded, now); err != nil {
			return err
		}
	}
	return nil
}

// UpsertRemoved writes tombstones, replacing any soft or inherited override
// at the keys.
func (r *OverlayRepositoryImpl[M]) UpsertRemoved(ctx context.Context, tenantID string, keys []menu.OverlayKey) error {
	overlays := make([]menu.Overlay, 0, len(keys))
	for _, k := range keys {
		overlays = append(overlays, menu.Overlay{OverlayKey: k, State: menu.OverlayRemoved})
	}

	now := time.Now().UTC()
	updates := map[string]any{"state": menu.OverlayRemoved.String(), "updated_at": now}
	if r.mapper.TracksOrigin() {
		updates["origin"] = ""
	}
	onConflict := clause.OnConflict{
		Columns:   r.keyColumns(),
		DoUpdates: clause.Assignments(updates),
	}
	return r.insert(ctx, tenantID, dedupeOverlays(overlays), onConflict, now)
}

// InsertInherited stores overlays copied from a category. A key that
// already holds a row is skipped.
func (r *OverlayRepositoryImpl[M]) InsertInherited(ctx context.Context, tenantID string, overlays []menu.Overlay) error {
	if !r.mapper.TracksOrigin() {
		return fmt.Errorf("insert inherited overlays: table has no origin column")
	}
	for _, o := range overlays {
		if !o.Inherited() {
			return fmt.Errorf("insert inherited overlay %s@%s: origin is required", o.SubjectID, o.LocationID)
		}
	}
	onConflict := clause.OnConflict{Columns: r.keyColumns(), DoNothing: true}
	return r.insert(ctx, tenantID, dedupeOverlays(overlays), onConflict, time.Now().UTC())
}

// DeleteInherited removes the overlays whose origin is categoryID and that
// match filter.
func (r *OverlayRepositoryImpl[M]) DeleteInherited(ctx context.Context, tenantID, categoryID string, filter menu.OverlayFilter) (int64, error) {
	if !r.mapper.TracksOrigin() {
		return 0, fmt.Errorf("delete inherited overlays: table has no origin column")
	}
	if categoryID == "" {
		return 0, fmt.Errorf("delete inherited overlays: category id is required")
	}
	channels, states := filterValues(filter)

	result := r.db.WithContext(ctx).
		Scopes(
			db.Tenant(tenantID),
			db.ColumnIn("location_id", filter.LocationIDs),
			db.ColumnIn("channel", channels),
			db.ColumnIn("state", states),
		).
		Where("origin = ?", categoryID).
		Delete(new(M))
	if result.Error != nil {
		r.logger.Errorw("failed to delete inherited overlays", "tenant_id", tenantID, "category_id", categoryID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete inherited overlays: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *OverlayRepositoryImpl[M]) insert(ctx context.Context, tenantID string, overlays []menu.Overlay, onConflict clause.OnConflict, now time.Time) error {
	for _, chunk := range db.Chunk(overlays, constants.DefaultBatchSize) {
		rows := make([]M, 0, len(chunk))
		for _, o := range chunk {
			rows = append(rows, r.mapper.ToModel(tenantID, o, now))
		}
		if err := r.db.WithContext(ctx).Clauses(onConflict).Create(&rows).Error; err != nil {
			r.logger.Errorw("failed to upsert overlays", "tenant_id", tenantID, "count", len(rows), "error", err)
			return fmt.Errorf("failed to upsert overlays: %w", err)
		}
	}
	return nil
}

// DeleteKeys removes the overlays at exactly the given keys, one statement
// per (location, channel) pair.
func (r *OverlayRepositoryImpl[M]) DeleteKeys(ctx context.Context, tenantID string, keys []menu.OverlayKey) (int64, error) {
	type cell struct {
		location string
		channel  menu.Channel
	}
	grouped := make(map[cell][]string)
	var order []cell
	for _, k := range keys {
		c := cell{k.LocationID, k.Channel}
		if _, ok := grouped[c]; !ok {
			order = append(order, c)
		}
		grouped[c] = append(grouped[c], k.SubjectID)
	}

	var total int64
	for _, c := range order {
		for _, chunk := range db.Chunk(grouped[c], constants.DefaultBatchSize) {
			result := r.db.WithContext(ctx).
				Scopes(db.Tenant(tenantID)).
				Where(r.subject()+" IN ? AND location_id = ? AND channel = ?", chunk, c.location, c.channel.String()).
				Delete(new(M))
			if result.Error != nil {
				r.logger.Errorw("failed to delete overlays", "tenant_id", tenantID, "location_id", c.location, "channel", c.channel, "error", result.Error)
				return total, fmt.Errorf("failed to delete overlays: %w", result.Error)
			}
			total += result.RowsAffected
		}
	}
	return total, nil
}

// DeleteBySubjects removes the subjects' overlays matching filter.
func (r *OverlayRepositoryImpl[M]) DeleteBySubjects(ctx context.Context, tenantID string, subjectIDs []string, filter menu.OverlayFilter) (int64, error) {
	channels, states := filterValues(filter)

	var total int64
	for _, chunk := range db.Chunk(subjectIDs, constants.DefaultBatchSize) {
		result := r.db.WithContext(ctx).
			Scopes(
				db.Tenant(tenantID),
				db.ColumnIn(r.subject(), chunk),
				db.ColumnIn("location_id", filter.LocationIDs),
				db.ColumnIn("channel", channels),
				db.ColumnIn("state", states),
			).
			Delete(new(M))
		if result.Error != nil {
			r.logger.Errorw("failed to delete overlays by subject", "tenant_id", tenantID, "count", len(chunk), "error", result.Error)
			return total, fmt.Errorf("failed to delete overlays: %w", result.Error)
		}
		total += result.RowsAffected
	}
	return total, nil
}

func filterValues(filter menu.OverlayFilter) (channels, states []string) {
	channels = make([]string, 0, len(filter.Channels))
	for _, c := range filter.Channels {
		channels = append(channels, c.String())
	}
	states = make([]string, 0, len(filter.States))
	for _, s := range filter.States {
		states = append(states, s.String())
	}
	return channels, states
}

// dedupeOverlays keeps one overlay per key; a tombstone beats a later soft
// write, otherwise the last write wins.
func dedupeOverlays(overlays []menu.Overlay) []menu.Overlay {
	idx := make(map[menu.OverlayKey]int, len(overlays))
	out := make([]menu.Overlay, 0, len(overlays))
	for _, o := range overlays {
		if i, ok := idx[o.OverlayKey]; ok {
			if out[i].State != menu.OverlayRemoved {
				out[i].State = o.State
				out[i].Origin = o.Origin
			}
			continue
		}
		idx[o.OverlayKey] = len(out)
		out = append(out, o)
	}
	return out
}
