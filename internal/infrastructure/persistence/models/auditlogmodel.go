package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"qravy/internal/shared/constants"
)

// AuditLogModel is an append-only record of a menu mutation.
type AuditLogModel struct {
	ID              string         `gorm:"primaryKey;size:32"`
	TenantID        string         `gorm:"not null;size:64;index:idx_audit_tenant_created,priority:1"`
	ActorID         string         `gorm:"not null;size:64"`
	ActorRole       string         `gorm:"not null;size:32"`
	ActorLocationID string         `gorm:"size:32"`
	Action          string         `gorm:"not null;size:64;index:idx_audit_action"`
	SubjectIDs      datatypes.JSON `gorm:"type:json"`
	BeforeState     datatypes.JSON `gorm:"type:json"`
	AfterState      datatypes.JSON `gorm:"type:json"`
	CreatedAt       time.Time      `gorm:"index:idx_audit_tenant_created,priority:2"`
}

// TableName specifies the table name for GORM.
func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}

// BeforeCreate hook for GORM
func (m *AuditLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
