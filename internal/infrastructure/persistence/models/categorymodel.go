package models

import (
	"time"

	"qravy/internal/shared/constants"
)

// CategoryModel represents the database persistence model for categories.
type CategoryModel struct {
	ID           string `gorm:"primaryKey;size:32"`
	TenantID     string `gorm:"not null;size:64;index:idx_category_tenant_name,priority:1"`
	Name         string `gorm:"not null;size:200"`
	NameKey      string `gorm:"not null;size:200;index:idx_category_tenant_name,priority:2"` // case-folded name
	Scope        string `gorm:"not null;size:16;default:all"`
	LocationID   string `gorm:"not null;size:32;default:''"`
	ChannelScope string `gorm:"not null;size:16;default:all"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM.
func (CategoryModel) TableName() string {
	return constants.TableCategories
}
