package usecase

import (
	"context"

	"gaspass/internal/domain/entity"
)

// StatsUsecase defines the interface for visit tracking and site counters.
type StatsUsecase interface {
	// RecordVisit stores one page visit attributed to the caller's address.
	RecordVisit(ctx context.Context, ip string) error

	// VisitStats returns per-day visit counts covering the last `days` days,
	// including today.
	VisitStats(ctx context.Context, days int) ([]entity.VisitBucket, error)

	// Totals returns headline row counts for the dashboard.
	Totals(ctx context.Context) (*entity.SiteTotals, error)
}
