package dto

import (
	"time"

	"qravy/internal/domain/availability"
	"qravy/internal/domain/menu"
	"qravy/internal/shared/mapper"
)

const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

// VisibilityDTO is an item's baseline visibility.
type VisibilityDTO struct {
	DineIn bool `json:"dine_in"`
	Online bool `json:"online"`
}

// ChannelStatusDTO is the resolved state of one channel.
type ChannelStatusDTO struct {
	Channel   string `json:"channel"`
	Listed    bool   `json:"listed"`
	Available bool   `json:"available"`
}

// MenuItemDTO is an item as stored.
type MenuItemDTO struct {
	ID          string        `json:"id"`
	CategoryID  string        `json:"category_id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	Scope       string        `json:"scope"`
	LocationID  string        `json:"location_id,omitempty"`
	Visibility  VisibilityDTO `json:"visibility"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ResolvedMenuItemDTO is an item in a resolved listing.
type ResolvedMenuItemDTO struct {
	MenuItemDTO
	DescriptionHTML string             `json:"description_html,omitempty"`
	CategoryName    string             `json:"category_name,omitempty"`
	Status          string             `json:"status"`
	Hidden          bool               `json:"hidden"`
	Channels        []ChannelStatusDTO `json:"channels"`
}

// MenuListDTO is the response of a listing.
type MenuListDTO struct {
	LocationID string                `json:"location_id,omitempty"`
	Channel    string                `json:"channel,omitempty"`
	Items      []ResolvedMenuItemDTO `json:"items"`
}

// BulkResultDTO reports which ids a bulk operation acted on.
type BulkResultDTO struct {
	Processed []string `json:"processed"`
	Skipped   []string `json:"skipped,omitempty"`
	Affected  int64    `json:"affected"`
}

// DeleteResultDTO reports the effect of a scoped delete.
type DeleteResultDTO struct {
	ID     string `json:"id"`
	Effect string `json:"effect"`
}

// CategoryOverlayDTO reports a category visibility change. ItemsLifted
// counts the inherited item overlays a clear removed.
type CategoryOverlayDTO struct {
	CategoryID  string   `json:"category_id"`
	LocationID  string   `json:"location_id"`
	Channels    []string `json:"channels"`
	State       string   `json:"state,omitempty"`
	ItemsLifted int64    `json:"items_lifted,omitempty"`
}

// ToMenuItemDTO converts a domain item.
func ToMenuItemDTO(item *menu.MenuItem) MenuItemDTO {
	p := item.Placement()
	v := item.Visibility()
	return MenuItemDTO{
		ID:          item.ID(),
		CategoryID:  item.CategoryID(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Scope:       p.Scope.String(),
		LocationID:  p.LocationID,
		Visibility:  VisibilityDTO{DineIn: v.DineIn, Online: v.Online},
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

// ToResolvedMenuItemDTO converts a resolved item; descriptionHTML is rendered by the caller.
func ToResolvedMenuItemDTO(r availability.Resolved, descriptionHTML string) ResolvedMenuItemDTO {
	out := ResolvedMenuItemDTO{
		MenuItemDTO:     ToMenuItemDTO(r.Item),
		DescriptionHTML: descriptionHTML,
		Status:          StatusUnavailable,
		Hidden:          !r.Available,
		Channels: mapper.MapSlice(r.Channels, func(cs availability.ChannelState) ChannelStatusDTO {
			return ChannelStatusDTO{Channel: cs.Channel.String(), Listed: cs.Listed, Available: cs.Available}
		}),
	}
	if r.Available {
		out.Status = StatusAvailable
	}
	if r.Category != nil {
		out.CategoryName = r.Category.Name()
	}
	return out
}

// ChannelStrings converts channels for responses.
func ChannelStrings(channels []menu.Channel) []string {
	return mapper.MapSlice(channels, menu.Channel.String)
}
