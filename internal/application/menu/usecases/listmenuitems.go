package usecases

import (
	"context"
	"encoding/json"

	"qravy/internal/application/menu/dto"
	"qravy/internal/domain/availability"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/logger"
)

// DescriptionRenderer turns a markdown description into safe HTML.
type DescriptionRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// ListMenuItemsQuery selects the view to resolve.
type ListMenuItemsQuery struct {
	LocationID string
	Channel    string
}

// ListMenuItemsUseCase resolves the tenant's menu for a location and channel.
type ListMenuItemsUseCase struct {
	reader           menuReader
	itemOverlays     menu.ItemOverlayRepository
	categoryOverlays menu.CategoryOverlayRepository
	cache            MenuViewCache
	renderer         DescriptionRenderer
	logger           logger.Interface
}

// NewListMenuItemsUseCase creates a new list menu items use case
func NewListMenuItemsUseCase(
	items menu.MenuItemRepository,
	categories menu.CategoryRepository,
	locations menu.LocationRepository,
	itemOverlays menu.ItemOverlayRepository,
	categoryOverlays menu.CategoryOverlayRepository,
	cache MenuViewCache,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *ListMenuItemsUseCase {
	return &ListMenuItemsUseCase{
		reader:           menuReader{items: items, categories: categories, locations: locations, logger: logger},
		itemOverlays:     itemOverlays,
		categoryOverlays: categoryOverlays,
		cache:            cache,
		renderer:         renderer,
		logger:           logger,
	}
}

// Execute resolves the listing. Branch sessions always see their own location.
func (uc *ListMenuItemsUseCase) Execute(ctx context.Context, caller Caller, query ListMenuItemsQuery) (*dto.MenuListDTO, error) {
	locationID, err := authorization.BranchLocation(caller.Role, caller.LocationID, query.LocationID)
	if err != nil {
		return nil, err
	}
	channel, err := parseChannel(query.Channel)
	if err != nil {
		return nil, err
	}
	if locationID != "" {
		if err := uc.reader.location(ctx, caller.TenantID, locationID); err != nil {
			return nil, err
		}
	}

	payload, version, ok := uc.cache.Get(ctx, caller.TenantID, locationID, channel)
	if ok {
		var cached dto.MenuListDTO
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		uc.logger.Warnw("discarding unreadable cached listing", "tenant_id", caller.TenantID)
	}

	snapshot, err := uc.loadSnapshot(ctx, caller.TenantID)
	if err != nil {
		return nil, err
	}

	resolved := availability.Resolve(snapshot, availability.View{LocationID: locationID, Channel: channel})
	result := &dto.MenuListDTO{
		LocationID: locationID,
		Items:      make([]dto.ResolvedMenuItemDTO, 0, len(resolved)),
	}
	if channel != nil {
		result.Channel = channel.String()
	}
	for _, r := range resolved {
		result.Items = append(result.Items, dto.ToResolvedMenuItemDTO(r, uc.renderDescription(r.Item)))
	}

	if payload, err := json.Marshal(result); err == nil {
		uc.cache.Set(ctx, caller.TenantID, version, locationID, channel, payload)
	}

	uc.logger.Debugw("menu resolved",
		"tenant_id", caller.TenantID,
		"location_id", locationID,
		"items", len(snapshot.Items),
		"listed", len(result.Items))
	return result, nil
}

// loadSnapshot reads everything the resolver needs in five bulk queries.
func (uc *ListMenuItemsUseCase) loadSnapshot(ctx context.Context, tenantID string) (*availability.Snapshot, error) {
	items, err := uc.reader.items.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError(uc.logger, "failed to list menu items", err, "tenant_id", tenantID)
	}
	categories, err := uc.reader.categories.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError(uc.logger, "failed to list categories", err, "tenant_id", tenantID)
	}
	locations, err := uc.reader.locations.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError(uc.logger, "failed to list locations", err, "tenant_id", tenantID)
	}
	itemOverlays, err := uc.itemOverlays.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError(uc.logger, "failed to list item overlays", err, "tenant_id", tenantID)
	}
	categoryOverlays, err := uc.categoryOverlays.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError(uc.logger, "failed to list category overlays", err, "tenant_id", tenantID)
	}
	return availability.NewSnapshot(items, categories, locations, itemOverlays, categoryOverlays), nil
}

func (uc *ListMenuItemsUseCase) renderDescription(item *menu.MenuItem) string {
	if item.Description() == "" {
		return ""
	}
	rendered, err := uc.renderer.ToHTMLSanitized(item.Description())
	if err != nil {
		uc.logger.Warnw("failed to render description", "item_id", item.ID(), "error", err)
		return ""
	}
	return rendered
}
