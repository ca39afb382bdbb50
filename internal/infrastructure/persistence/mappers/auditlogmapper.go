package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"qravy/internal/domain/audit"
	"qravy/internal/infrastructure/persistence/models"
)

// AuditLogMapper serializes audit entries for storage.
type AuditLogMapper interface {
	ToModel(entry *audit.Entry) (*models.AuditLogModel, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(entry *audit.Entry) (*models.AuditLogModel, error) {
	subjects, err := toJSON(entry.SubjectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit subjects: %w", err)
	}
	before, err := toJSON(entry.Before)
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit before state: %w", err)
	}
	after, err := toJSON(entry.After)
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit after state: %w", err)
	}

	return &models.AuditLogModel{
		ID:              entry.ID,
		TenantID:        entry.TenantID,
		ActorID:         entry.Actor.UserID,
		ActorRole:       entry.Actor.Role,
		ActorLocationID: entry.Actor.LocationID,
		Action:          string(entry.Action),
		SubjectIDs:      subjects,
		BeforeState:     before,
		AfterState:      after,
		CreatedAt:       entry.CreatedAt,
	}, nil
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
