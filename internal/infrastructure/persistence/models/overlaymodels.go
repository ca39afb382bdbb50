package models

import (
	"time"

	"qravy/internal/shared/constants"
)

// ItemAvailabilityOverlayModel stores one item override per (item, location, channel).
// The composite primary key is the overlay key, so upserts conflict on it.
type ItemAvailabilityOverlayModel struct {
	TenantID   string `gorm:"not null;size:64;primaryKey"`
	ItemID     string `gorm:"not null;size:32;primaryKey"`
	LocationID string `gorm:"not null;size:32;primaryKey"`
	Channel    string `gorm:"not null;size:16;primaryKey"`
	State      string `gorm:"not null;size:16"` // on, off, removed
	Origin     string `gorm:"not null;size:32;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM.
func (ItemAvailabilityOverlayModel) TableName() string {
	return constants.TableItemAvailabilityOverlays
}

// CategoryVisibilityOverlayModel stores one category override per (category, location, channel).
type CategoryVisibilityOverlayModel struct {
	TenantID   string `gorm:"not null;size:64;primaryKey"`
	CategoryID string `gorm:"not null;size:32;primaryKey"`
	LocationID string `gorm:"not null;size:32;primaryKey"`
	Channel    string `gorm:"not null;size:16;primaryKey"`
	State      string `gorm:"not null;size:16"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM.
func (CategoryVisibilityOverlayModel) TableName() string {
	return constants.TableCategoryVisibilityOverlays
}
