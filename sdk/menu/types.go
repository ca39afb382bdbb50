// Package menu provides a Go SDK for the Qravy menu API, used by POS and
// branch tablet integrations.
package menu

import "time"

// Channels accepted by the API.
const (
	ChannelDineIn = "dine_in"
	ChannelOnline = "online"
)

// Item statuses in a resolved menu.
const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

// Visibility is an item's baseline per channel.
type Visibility struct {
	DineIn bool `json:"dine_in"`
	Online bool `json:"online"`
}

// ChannelStatus is an item's resolved state on one channel.
type ChannelStatus struct {
	Channel   string `json:"channel"`
	Listed    bool   `json:"listed"`
	Available bool   `json:"available"`
}

// Item is an entry of a resolved menu.
type Item struct {
	ID              string          `json:"id"`
	CategoryID      string          `json:"category_id,omitempty"`
	CategoryName    string          `json:"category_name,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"description_html,omitempty"`
	Price           int64           `json:"price"`
	Scope           string          `json:"scope"`
	LocationID      string          `json:"location_id,omitempty"`
	Visibility      Visibility      `json:"visibility"`
	Status          string          `json:"status"`
	Hidden          bool            `json:"hidden"`
	Channels        []ChannelStatus `json:"channels"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Menu is the menu resolved for one location and channel.
type Menu struct {
	LocationID string `json:"location_id,omitempty"`
	Channel    string `json:"channel,omitempty"`
	Items      []Item `json:"items"`
}

// ListOptions selects the view. Branch tokens ignore LocationID.
type ListOptions struct {
	LocationID string
	Channel    string
}

// AvailabilityRequest switches items on or off.
type AvailabilityRequest struct {
	IDs        []string `json:"ids"`
	Active     bool     `json:"active"`
	LocationID string   `json:"location_id,omitempty"`
	Channel    string   `json:"channel,omitempty"`
}

// BulkDeleteRequest removes items, optionally scoped to a location or channel.
type BulkDeleteRequest struct {
	IDs        []string `json:"ids"`
	LocationID string   `json:"location_id,omitempty"`
	Channel    string   `json:"channel,omitempty"`
}

// BulkResult reports which ids a bulk operation acted on.
type BulkResult struct {
	Processed []string `json:"processed"`
	Skipped   []string `json:"skipped,omitempty"`
	Affected  int64    `json:"affected"`
}

// CategoryVisibility sets a category's state ("on", "off" or "removed").
type CategoryVisibility struct {
	State      string `json:"state"`
	LocationID string `json:"location_id,omitempty"`
	Channel    string `json:"channel,omitempty"`
}

// CategoryOverlay reports a category visibility change.
type CategoryOverlay struct {
	CategoryID  string   `json:"category_id"`
	LocationID  string   `json:"location_id"`
	Channels    []string `json:"channels"`
	State       string   `json:"state,omitempty"`
	ItemsLifted int64    `json:"items_lifted,omitempty"`
}

type apiError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
	Message string    `json:"message,omitempty"`
}
