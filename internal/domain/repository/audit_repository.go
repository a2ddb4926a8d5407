package repository

import (
	"context"

	"gaspass/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditRepository is an append-only trail of administrative actions.
type AuditRepository interface {
	Append(ctx context.Context, entry *entity.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditEntry, error)
	ListByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]*entity.AuditEntry, error)
}
