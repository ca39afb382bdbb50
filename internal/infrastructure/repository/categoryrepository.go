package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"qravy/internal/domain/menu"
	"qravy/internal/infrastructure/persistence/mappers"
	"qravy/internal/infrastructure/persistence/models"
	"qravy/internal/shared/db"
	apperrors "qravy/internal/shared/errors"
	"qravy/internal/shared/logger"
)

// CategoryRepositoryImpl implements menu.CategoryRepository.
type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
	logger logger.Interface
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(gdb *gorm.DB, logger logger.Interface) menu.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCategoryMapper(),
		logger: logger,
	}
}

// Create inserts a new category.
func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *menu.Category) error {
	model := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("category already exists", category.ID())
		}
		r.logger.Errorw("failed to create category", "id", category.ID(), "error", err)
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID returns nil when the category does not exist for the tenant.
func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, tenantID, id string) (*menu.Category, error) {
	return r.first(ctx, tenantID, "id = ?", id)
}

// GetByName matches the case-folded name. When several categories fold to
// the same key the oldest wins.
func (r *CategoryRepositoryImpl) GetByName(ctx context.Context, tenantID, name string) (*menu.Category, error) {
	return r.first(ctx, tenantID, "name_key = ?", menu.FoldName(name))
}

func (r *CategoryRepositoryImpl) first(ctx context.Context, tenantID, cond string, arg any) (*menu.Category, error) {
	var row models.CategoryModel
	err := r.db.WithContext(ctx).
		Scopes(db.Tenant(tenantID)).
		Where(cond, arg).
		Order("created_at ASC, id ASC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get category", "tenant_id", tenantID, "arg", arg, "error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return r.mapper.ToEntity(&row)
}

// ListByTenant returns every category of the tenant ordered by name.
func (r *CategoryRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]*menu.Category, error) {
	var rows []*models.CategoryModel
	if err := r.db.WithContext(ctx).Scopes(db.Tenant(tenantID)).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list categories", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return r.mapper.ToEntities(rows)
}
