package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"qravy/internal/domain/audit"
	"qravy/internal/infrastructure/persistence/mappers"
	"qravy/internal/shared/logger"
)

// AuditLogRepositoryImpl implements audit.Repository.
type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
	logger logger.Interface
}

// NewAuditLogRepository creates a new audit log repository instance.
func NewAuditLogRepository(gdb *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditLogRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAuditLogMapper(),
		logger: logger,
	}
}

// Create appends one entry.
func (r *AuditLogRepositoryImpl) Create(ctx context.Context, entry *audit.Entry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		r.logger.Errorw("failed to map audit entry", "action", entry.Action, "error", err)
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to write audit entry", "tenant_id", entry.TenantID, "action", entry.Action, "error", err)
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}
