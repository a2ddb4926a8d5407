package postgres

import (
	"context"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditRepository implements the domain.AuditRepository interface using GORM.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Append writes one trail entry.
func (repo *auditRepository) Append(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := &model.AuditLogModel{
		ActorID:    entry.ActorID,
		ActorName:  entry.ActorName,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		IPAddress:  entry.IPAddress,
	}
	if !entry.OccurredAt.IsZero() {
		entryM.OccurredAt = entry.OccurredAt
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit entry")
	}

	entry.ID = entryM.ID
	entry.OccurredAt = entryM.OccurredAt

	return nil
}

// ListRecent returns the newest entries, most recent first.
func (repo *auditRepository) ListRecent(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	return repo.list(ctx, limit, nil)
}

// ListByActor returns one account's newest entries, most recent first.
func (repo *auditRepository) ListByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]*entity.AuditEntry, error) {
	return repo.list(ctx, limit, &actorID)
}

func (repo *auditRepository) list(ctx context.Context, limit int, actorID *uuid.UUID) ([]*entity.AuditEntry, error) {
	query := repo.db.WithContext(ctx).Order("occurred_at DESC").Limit(limit)
	if actorID != nil {
		query = query.Where("actor_id = ?", *actorID)
	}

	var models []model.AuditLogModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	entries := make([]*entity.AuditEntry, 0, len(models))
	for i := range models {
		entries = append(entries, &entity.AuditEntry{
			ID:         models[i].ID,
			OccurredAt: models[i].OccurredAt,
			ActorID:    models[i].ActorID,
			ActorName:  models[i].ActorName,
			Method:     models[i].Method,
			Path:       models[i].Path,
			StatusCode: models[i].StatusCode,
			IPAddress:  models[i].IPAddress,
		})
	}

	return entries, nil
}
