package impl

import (
	"context"
	"log/slog"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/errors"
	"gaspass/internal/usecase"

	"go.uber.org/fx"
)

const defaultVisitWindowDays = 30

// statsService implements the StatsUsecase interface.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

// RecordVisit stores one page visit attributed to the caller's address.
func (srv *statsService) RecordVisit(ctx context.Context, ip string) error {
	if ip == "" {
		return domainerrors.ErrValidationFailed.WithDetails("missing client address")
	}

	if err := srv.statsRepo.RecordVisit(ctx, ip); err != nil {
		return errors.Wrap(err, "failed to record visit")
	}

	return nil
}

// VisitStats returns per-day visit counts over the requested window,
// capped at the default window when out of range.
func (srv *statsService) VisitStats(ctx context.Context, days int) ([]entity.VisitBucket, error) {
	if days <= 0 || days > defaultVisitWindowDays {
		days = defaultVisitWindowDays
	}

	buckets, err := srv.statsRepo.VisitStats(ctx, days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load visit stats")
	}

	return buckets, nil
}

// Totals returns headline row counts for the dashboard.
func (srv *statsService) Totals(ctx context.Context) (*entity.SiteTotals, error) {
	totals, err := srv.statsRepo.Totals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load site totals")
	}

	return totals, nil
}
