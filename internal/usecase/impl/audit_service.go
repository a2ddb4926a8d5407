package impl

import (
	"context"
	"log/slog"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	"gaspass/internal/domain/repository"
	"gaspass/internal/errors"
	"gaspass/internal/usecase"

	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	auditRepo repository.AuditRepository
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for auditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AuditRepo repository.AuditRepository
	Logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
	}
}

// Record appends one entry. A failed append is logged and swallowed so the
// audited request itself is never failed by its own trail.
func (srv *auditService) Record(ctx context.Context, entry *entity.AuditEntry) {
	if err := srv.auditRepo.Append(ctx, entry); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Audit append failed",
			slog.String("method", entry.Method),
			slog.String("path", entry.Path),
			slog.Any("error", err))
	}
}

// Recent returns the newest entries, most recent first.
func (srv *auditService) Recent(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	entries, err := srv.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	return entries, nil
}
