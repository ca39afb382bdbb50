// Package db provides GORM query scopes and batching helpers shared by the
// repositories.
package db

import (
	"gorm.io/gorm"
)

// Tenant is a GORM scope that restricts a query to one tenant's rows.
// Every repository query goes through it.
//
//	db.Model(&models.MenuItemModel{}).Scopes(db.Tenant(tenantID)).Find(&rows)
func Tenant(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// ColumnIn filters column to values. An empty slice leaves the query
// unfiltered, so callers check for empty input first when that matters.
func ColumnIn[T any](column string, values []T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db
		}
		return db.Where(column+" IN ?", values)
	}
}
