package usecases

import (
	"context"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/audit"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/errors"
	"qravy/internal/shared/id"
	"qravy/internal/shared/logger"
	"qravy/internal/shared/utils/setutil"
)

// TextSanitizer strips markup from user-supplied text.
type TextSanitizer interface {
	StripTags(text string) string
}

// CreateMenuItemUseCase creates an item, inherits its category's overlays
// and seeds per-location overlays from the request.
type CreateMenuItemUseCase struct {
	reader           menuReader
	itemOverlays     menu.ItemOverlayRepository
	categoryOverlays menu.CategoryOverlayRepository
	sanitizer        TextSanitizer
	recorder         *ChangeRecorder
	logger           logger.Interface
}

// NewCreateMenuItemUseCase creates a new create menu item use case
func NewCreateMenuItemUseCase(
	items menu.MenuItemRepository,
	categories menu.CategoryRepository,
	locations menu.LocationRepository,
	itemOverlays menu.ItemOverlayRepository,
	categoryOverlays menu.CategoryOverlayRepository,
	sanitizer TextSanitizer,
	recorder *ChangeRecorder,
	logger logger.Interface,
) *CreateMenuItemUseCase {
	return &CreateMenuItemUseCase{
		reader:           menuReader{items: items, categories: categories, locations: locations, logger: logger},
		itemOverlays:     itemOverlays,
		categoryOverlays: categoryOverlays,
		sanitizer:        sanitizer,
		recorder:         recorder,
		logger:           logger,
	}
}

// Execute executes the create menu item use case
func (uc *CreateMenuItemUseCase) Execute(ctx context.Context, caller Caller, req dto.CreateMenuItemRequest) (*dto.MenuItemDTO, error) {
	req.Normalize()
	uc.logger.Infow("executing create menu item use case", "tenant_id", caller.TenantID)

	if len(req.IncludeLocationIDs) > 0 && len(req.ExcludeLocationIDs) > 0 {
		return nil, errors.NewValidationError("include_location_ids and exclude_location_ids are mutually exclusive")
	}
	channel, err := parseChannel(req.Channel)
	if err != nil {
		return nil, err
	}
	if len(req.ExcludeChannelAtLocationIDs) > 0 && channel == nil {
		return nil, errors.NewValidationError("exclude_channel_at_location_ids requires channel")
	}
	if err := validateLocationID(req.LocationID); err != nil {
		return nil, err
	}

	category, err := uc.reader.category(ctx, caller.TenantID, req.CategoryID, req.Category)
	if err != nil {
		return nil, err
	}

	placement := menu.GlobalPlacement()
	switch {
	case category != nil:
		placement = category.Placement()
	case req.LocationID != "":
		if err := uc.reader.location(ctx, caller.TenantID, req.LocationID); err != nil {
			return nil, err
		}
		placement = menu.PinnedPlacement(req.LocationID)
	}

	itemID, err := id.NewMenuItemID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate menu item id")
	}

	params := menu.NewMenuItemParams{
		ID:          itemID,
		TenantID:    caller.TenantID,
		Name:        uc.sanitizer.StripTags(req.Name),
		Description: uc.sanitizer.StripTags(req.Description),
		Price:       req.Price,
		Placement:   placement,
		Visibility:  initialVisibility(category, channel, req.Visibility),
	}
	if category != nil {
		params.CategoryID = category.ID()
	}
	item, err := menu.NewMenuItem(params)
	if err != nil {
		return nil, domainValidationError(err)
	}

	if err := uc.reader.items.Create(ctx, item); err != nil {
		return nil, storeError(uc.logger, "failed to create menu item", err, "tenant_id", caller.TenantID)
	}

	if err := uc.inheritCategoryOverlays(ctx, caller.TenantID, item, category); err != nil {
		return nil, err
	}
	if err := uc.seedLocationOverlays(ctx, caller.TenantID, item, channel, req); err != nil {
		return nil, err
	}

	result := dto.ToMenuItemDTO(item)
	uc.recorder.Record(ctx, caller, audit.ActionItemCreate, []string{item.ID()}, nil, result)

	uc.logger.Infow("menu item created successfully", "tenant_id", caller.TenantID, "item_id", item.ID())
	return &result, nil
}

// initialVisibility computes the baseline for each channel: the category
// must allow it, the request channel (if any) must match it, and an
// explicit flag may switch it off.
func initialVisibility(category *menu.Category, channel *menu.Channel, explicit *dto.VisibilityInput) menu.Visibility {
	var v menu.Visibility
	for _, c := range menu.AllChannels {
		visible := category == nil || category.AllowsChannel(c)
		if channel != nil && *channel != c {
			visible = false
		}
		if flag := explicitFlag(explicit, c); flag != nil && !*flag {
			visible = false
		}
		v = v.With(c, visible)
	}
	return v
}

func explicitFlag(v *dto.VisibilityInput, c menu.Channel) *bool {
	if v == nil {
		return nil
	}
	if c == menu.ChannelDineIn {
		return v.DineIn
	}
	return v.Online
}

// inheritCategoryOverlays copies the category's off and removed overlays
// onto the new item, marked with the category as origin, and drops any on
// overlay for baseline-off channels.
func (uc *CreateMenuItemUseCase) inheritCategoryOverlays(ctx context.Context, tenantID string, item *menu.MenuItem, category *menu.Category) error {
	if category != nil {
		overlays, err := uc.categoryOverlays.ListBySubjects(ctx, tenantID, []string{category.ID()})
		if err != nil {
			return storeError(uc.logger, "failed to load category overlays", err, "tenant_id", tenantID, "category_id", category.ID())
		}

		var inherited []menu.Overlay
		for _, o := range overlays {
			if o.State == menu.OverlaySoftOn || !item.Placement().AppliesAt(o.LocationID) {
				continue
			}
			inherited = append(inherited, o)
		}
		if err := uc.itemOverlays.InsertInherited(ctx, tenantID, menu.Inherit(item.ID(), inherited)); err != nil {
			return storeError(uc.logger, "failed to inherit category overlays", err, "tenant_id", tenantID, "item_id", item.ID())
		}
	}

	var hidden []menu.Channel
	for _, c := range menu.AllChannels {
		if !item.Visibility().For(c) {
			hidden = append(hidden, c)
		}
	}
	if len(hidden) > 0 {
		filter := menu.OverlayFilter{Channels: hidden, States: []menu.OverlayState{menu.OverlaySoftOn}}
		if _, err := uc.itemOverlays.DeleteBySubjects(ctx, tenantID, []string{item.ID()}, filter); err != nil {
			return storeError(uc.logger, "failed to purge overrides of hidden channels", err, "tenant_id", tenantID, "item_id", item.ID())
		}
	}
	return nil
}

// seedLocationOverlays applies the include and exclude lists of a global item.
func (uc *CreateMenuItemUseCase) seedLocationOverlays(ctx context.Context, tenantID string, item *menu.MenuItem, channel *menu.Channel, req dto.CreateMenuItemRequest) error {
	if item.Placement().IsPinned() {
		return nil
	}
	if len(req.IncludeLocationIDs) == 0 && len(req.ExcludeLocationIDs) == 0 && len(req.ExcludeChannelAtLocationIDs) == 0 {
		return nil
	}

	registry, err := uc.reader.registry(ctx, tenantID)
	if err != nil {
		return err
	}
	known := setutil.New(registry...)
	targets := menu.TargetChannels(channel)

	var softOff []menu.Overlay
	var tombstones []menu.OverlayKey

	if include := known.Filter(id.FilterValid(req.IncludeLocationIDs, id.PrefixLocation)); len(include) > 0 {
		included := setutil.New(include...)
		for _, loc := range registry {
			if included.Has(loc) {
				continue
			}
			for _, c := range targets {
				softOff = append(softOff, menu.NewOverlay(item.ID(), loc, c, menu.OverlaySoftOff))
			}
		}
	}
	for _, loc := range known.Filter(id.FilterValid(req.ExcludeLocationIDs, id.PrefixLocation)) {
		for _, c := range targets {
			tombstones = append(tombstones, menu.OverlayKey{SubjectID: item.ID(), LocationID: loc, Channel: c})
		}
	}
	if channel != nil {
		for _, loc := range known.Filter(id.FilterValid(req.ExcludeChannelAtLocationIDs, id.PrefixLocation)) {
			tombstones = append(tombstones, menu.OverlayKey{SubjectID: item.ID(), LocationID: loc, Channel: *channel})
		}
	}

	if err := uc.itemOverlays.UpsertRemoved(ctx, tenantID, tombstones); err != nil {
		return storeError(uc.logger, "failed to seed location exclusions", err, "tenant_id", tenantID, "item_id", item.ID())
	}
	if err := uc.itemOverlays.UpsertSoft(ctx, tenantID, softOff); err != nil {
		return storeError(uc.logger, "failed to seed location inclusions", err, "tenant_id", tenantID, "item_id", item.ID())
	}

	uc.logger.Debugw("seeded location overlays", "item_id", item.ID(), "soft_off", len(softOff), "tombstones", len(tombstones))
	return nil
}
