package usecases

import (
	"context"
	"fmt"

	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/id"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils/setutil"
)

// Caller is the authenticated session a use case runs for.
type Caller struct {
	TenantID   string
	UserID     string
	Role       authorization.UserRole
	LocationID string
}

func (c Caller) actor() audit.Actor {
	return audit.Actor{UserID: c.UserID, Role: c.Role.String(), LocationID: c.LocationID}
}

// MenuViewCache caches rendered listings per tenant version. Get reports the
// version it looked under, hit or miss; Set stores under that version, so a
// listing loaded before a mutation never lands under the version the
// mutation created. A negative version is unknown and Set skips it.
// Implementations swallow their own failures.
type MenuViewCache interface {
	Get(ctx context.Context, tenantID, locationID string, channel *menu.Channel) (payload []byte, version int64, ok bool)
	Set(ctx context.Context, tenantID string, version int64, locationID string, channel *menu.Channel, payload []byte)
	Invalidate(ctx context.Context, tenantID string)
}

// ChangeRecorder writes the audit entry of a mutation and invalidates the
// tenant's cached listings.
type ChangeRecorder struct {
	auditRepo audit.Repository
	cache     MenuViewCache
	logger    logger.Interface
}

// NewChangeRecorder creates a new change recorder
func NewChangeRecorder(auditRepo audit.Repository, cache MenuViewCache, logger logger.Interface) *ChangeRecorder {
	return &ChangeRecorder{
		auditRepo: auditRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Record runs after the mutation has been applied. An audit write failure is
// logged rather than returned: the change itself already succeeded.
func (r *ChangeRecorder) Record(ctx context.Context, caller Caller, action audit.Action, subjectIDs []string, before, after any) {
	r.cache.Invalidate(ctx, caller.TenantID)

	auditID, err := id.NewAuditID()
	if err != nil {
		r.logger.Errorw("failed to generate audit id", "action", action, "error", err)
		return
	}
	entry, err := audit.NewEntry(auditID, caller.TenantID, caller.actor(), action, subjectIDs, before, after)
	if err != nil {
		r.logger.Errorw("failed to build audit entry", "action", action, "error", err)
		return
	}
	if err := r.auditRepo.Create(ctx, entry); err != nil {
		r.logger.Errorw("failed to write audit entry",
			"tenant_id", caller.TenantID,
			"action", action,
			"subjects", len(subjectIDs),
			"error", err)
	}
}

// storeError hides a persistence failure behind a retryable internal error.
func storeError(log logger.Interface, msg string, err error, keysAndValues ...any) error {
	log.Errorw(msg, append(keysAndValues, "error", err)...)
	return errors.NewStoreError(msg)
}

// domainValidationError maps menu validation sentinels to a 400.
func domainValidationError(err error) error {
	return errors.NewValidationError(err.Error())
}

func parseChannel(raw string) (*menu.Channel, error) {
	c, err := menu.ParseOptionalChannel(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid channel", fmt.Sprintf("%q is not dine-in or online", raw))
	}
	return c, nil
}

func validateLocationID(raw string) error {
	if raw == "" {
		return nil
	}
	if err := id.ValidatePrefix(raw, id.PrefixLocation); err != nil {
		return errors.NewValidationError("invalid location ID format", raw)
	}
	return nil
}

// menuReader bundles the repositories the mutation use cases read from.
type menuReader struct {
	items      menu.MenuItemRepository
	categories menu.CategoryRepository
	locations  menu.LocationRepository
	logger     logger.Interface
}

// workingSet filters raw ids to well-formed item ids owned by the tenant.
// An empty result is a validation error.
func (r menuReader) workingSet(ctx context.Context, tenantID string, rawIDs []string) ([]*menu.MenuItem, []string, error) {
	valid := id.FilterValid(rawIDs, id.PrefixMenuItem)
	if len(valid) == 0 {
		return nil, nil, errors.NewValidationError("no valid menu item ids")
	}

	items, err := r.items.GetByIDs(ctx, tenantID, valid)
	if err != nil {
		return nil, nil, storeError(r.logger, "failed to load menu items", err, "tenant_id", tenantID)
	}
	if len(items) == 0 {
		return nil, nil, errors.NewValidationError("no valid menu item ids")
	}

	found := setutil.New[string]()
	for _, item := range items {
		found.Add(item.ID())
	}
	var skipped []string
	for _, raw := range rawIDs {
		if !found.Has(raw) {
			skipped = append(skipped, raw)
		}
	}
	return items, skipped, nil
}

// item loads one item or returns a not-found error.
func (r menuReader) item(ctx context.Context, tenantID, itemID string) (*menu.MenuItem, error) {
	item, err := r.items.GetByID(ctx, tenantID, itemID)
	if err != nil {
		return nil, storeError(r.logger, "failed to get menu item", err, "tenant_id", tenantID, "item_id", itemID)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("menu item not found", itemID)
	}
	return item, nil
}

// registry returns the tenant's location ids in registry order.
func (r menuReader) registry(ctx context.Context, tenantID string) ([]string, error) {
	locs, err := r.locations.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError(r.logger, "failed to list locations", err, "tenant_id", tenantID)
	}
	return menu.LocationIDs(locs), nil
}

// location checks that locationID belongs to the tenant.
func (r menuReader) location(ctx context.Context, tenantID, locationID string) error {
	if err := validateLocationID(locationID); err != nil {
		return err
	}
	loc, err := r.locations.GetByID(ctx, tenantID, locationID)
	if err != nil {
		return storeError(r.logger, "failed to get location", err, "tenant_id", tenantID, "location_id", locationID)
	}
	if loc == nil {
		return errors.NewNotFoundError("location not found", locationID)
	}
	return nil
}

// category resolves a category by id or, failing that, by case-folded name.
// Both empty returns (nil, nil).
func (r menuReader) category(ctx context.Context, tenantID, categoryID, name string) (*menu.Category, error) {
	switch {
	case categoryID != "":
		if err := id.ValidatePrefix(categoryID, id.PrefixCategory); err != nil {
			return nil, errors.NewValidationError("invalid category ID format", categoryID)
		}
		c, err := r.categories.GetByID(ctx, tenantID, categoryID)
		if err != nil {
			return nil, storeError(r.logger, "failed to get category", err, "tenant_id", tenantID, "category_id", categoryID)
		}
		if c == nil {
			return nil, errors.NewNotFoundError("category not found", categoryID)
		}
		return c, nil
	case name != "":
		c, err := r.categories.GetByName(ctx, tenantID, name)
		if err != nil {
			return nil, storeError(r.logger, "failed to get category by name", err, "tenant_id", tenantID)
		}
		if c == nil {
			return nil, errors.NewNotFoundError("category not found", name)
		}
		return c, nil
	}
	return nil, nil
}

// itemIDs returns the ids of items.
func itemIDs(items []*menu.MenuItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID()
	}
	return ids
}

func channelString(c *menu.Channel) string {
	if c == nil {
		return ""
	}
	return c.String()
}
