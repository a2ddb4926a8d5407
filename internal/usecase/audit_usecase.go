package usecase

import (
	"context"

	"gaspass/internal/domain/entity"
)

// AuditUsecase defines the interface for the administrative action trail.
type AuditUsecase interface {
	// Record appends one entry. Failures are logged, never surfaced, so
	// auditing cannot fail the request it describes.
	Record(ctx context.Context, entry *entity.AuditEntry)

	// Recent returns the newest entries, most recent first.
	Recent(ctx context.Context, limit int) ([]*entity.AuditEntry, error)
}
