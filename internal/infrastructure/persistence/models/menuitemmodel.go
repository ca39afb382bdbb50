package models

import (
	"time"

	"qravy/internal/shared/constants"
)

// MenuItemModel represents the database persistence model for menu items.
type MenuItemModel struct {
	ID            string `gorm:"primaryKey;size:32"`
	TenantID      string `gorm:"not null;size:64;index:idx_menu_item_tenant"`
	CategoryID    string `gorm:"not null;size:32;default:'';index:idx_menu_item_category"`
	Name          string `gorm:"not null;size:200"`
	Description   string `gorm:"type:text"`
	Price         int64  `gorm:"not null;default:0"` // minor units
	Scope         string `gorm:"not null;size:16;default:all"`
	LocationID    string `gorm:"not null;size:32;default:''"`
	VisibleDineIn bool   `gorm:"not null;default:true"`
	VisibleOnline bool   `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM.
func (MenuItemModel) TableName() string {
	return constants.TableMenuItems
}
