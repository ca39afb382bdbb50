package dto

// Bodies accept both snake_case and the camelCase spellings older clients
// send. Normalize folds the camelCase fields into the canonical ones.

// VisibilityInput sets baseline flags; nil leaves a flag unchanged (or true
// on create).
type VisibilityInput struct {
	DineIn      *bool `json:"dine_in,omitempty"`
	DineInCamel *bool `json:"dineIn,omitempty"`
	Online      *bool `json:"online,omitempty"`
}

func (v *VisibilityInput) Normalize() {
	if v == nil {
		return
	}
	if v.DineIn == nil {
		v.DineIn = v.DineInCamel
	}
}

// CreateMenuItemRequest represents a new item plus optional overlay seeding.
type CreateMenuItemRequest struct {
	Name        string           `json:"name" binding:"required,max=200"`
	Description string           `json:"description" binding:"max=4000"`
	Price       int64            `json:"price" binding:"gte=0"`
	CategoryID  string           `json:"category_id"`
	Category    string           `json:"category"`
	LocationID  string           `json:"location_id"`
	Channel     string           `json:"channel" binding:"omitempty,channel"`
	Visibility  *VisibilityInput `json:"visibility"`

	IncludeLocationIDs          []string `json:"include_location_ids"`
	ExcludeLocationIDs          []string `json:"exclude_location_ids"`
	ExcludeChannelAtLocationIDs []string `json:"exclude_channel_at_location_ids"`

	CategoryIDCamel                  string   `json:"categoryId"`
	LocationIDCamel                  string   `json:"locationId"`
	IncludeLocationIDsCamel          []string `json:"includeLocationIds"`
	ExcludeLocationIDsCamel          []string `json:"excludeLocationIds"`
	ExcludeChannelAtLocationIDsCamel []string `json:"excludeChannelAtLocationIds"`
}

func (r *CreateMenuItemRequest) Normalize() {
	r.CategoryID = firstNonEmpty(r.CategoryID, r.CategoryIDCamel)
	r.LocationID = firstNonEmpty(r.LocationID, r.LocationIDCamel)
	if len(r.IncludeLocationIDs) == 0 {
		r.IncludeLocationIDs = r.IncludeLocationIDsCamel
	}
	if len(r.ExcludeLocationIDs) == 0 {
		r.ExcludeLocationIDs = r.ExcludeLocationIDsCamel
	}
	if len(r.ExcludeChannelAtLocationIDs) == 0 {
		r.ExcludeChannelAtLocationIDs = r.ExcludeChannelAtLocationIDsCamel
	}
	r.Visibility.Normalize()
}

// UpdateMenuItemRequest is a partial update; nil fields are left alone.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=4000"`
	Price       *int64           `json:"price" binding:"omitempty,gte=0"`
	Visibility  *VisibilityInput `json:"visibility"`
}

func (r *UpdateMenuItemRequest) Normalize() {
	r.Visibility.Normalize()
}

// DeleteScope narrows a delete to a location, a channel or both.
type DeleteScope struct {
	LocationID string
	Channel    string
}

// BulkAvailabilityRequest toggles availability for many items.
type BulkAvailabilityRequest struct {
	IDs             []string `json:"ids" binding:"required,min=1"`
	Active          *bool    `json:"active" binding:"required"`
	LocationID      string   `json:"location_id"`
	Channel         string   `json:"channel" binding:"omitempty,channel"`
	LocationIDCamel string   `json:"locationId"`
}

func (r *BulkAvailabilityRequest) Normalize() {
	r.LocationID = firstNonEmpty(r.LocationID, r.LocationIDCamel)
}

// BulkDeleteRequest deletes many items with one scope.
type BulkDeleteRequest struct {
	IDs             []string `json:"ids" binding:"required,min=1"`
	LocationID      string   `json:"location_id"`
	Channel         string   `json:"channel" binding:"omitempty,channel"`
	LocationIDCamel string   `json:"locationId"`
}

func (r *BulkDeleteRequest) Normalize() {
	r.LocationID = firstNonEmpty(r.LocationID, r.LocationIDCamel)
}

// BulkCategoryRequest moves many items to a category named by id or name.
type BulkCategoryRequest struct {
	IDs             []string `json:"ids" binding:"required,min=1"`
	CategoryID      string   `json:"category_id"`
	Category        string   `json:"category"`
	CategoryIDCamel string   `json:"categoryId"`
}

func (r *BulkCategoryRequest) Normalize() {
	r.CategoryID = firstNonEmpty(r.CategoryID, r.CategoryIDCamel)
}

// CategoryVisibilityRequest sets a category overlay.
type CategoryVisibilityRequest struct {
	LocationID      string `json:"location_id"`
	Channel         string `json:"channel" binding:"omitempty,channel"`
	State           string `json:"state" binding:"required,overlay_state"`
	LocationIDCamel string `json:"locationId"`
}

func (r *CategoryVisibilityRequest) Normalize() {
	r.LocationID = firstNonEmpty(r.LocationID, r.LocationIDCamel)
}

// ClearCategoryVisibilityRequest removes a category overlay.
type ClearCategoryVisibilityRequest struct {
	LocationID string
	Channel    string
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
