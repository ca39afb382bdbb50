package models

import (
	"time"

	"qravy/internal/shared/constants"
)

// LocationModel represents the database persistence model for branches.
type LocationModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	TenantID  string `gorm:"not null;size:64;index:idx_location_tenant"`
	Name      string `gorm:"not null;size:200"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM.
func (LocationModel) TableName() string {
	return constants.TableLocations
}
