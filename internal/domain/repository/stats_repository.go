package repository

import (
	"context"

	"gaspass/internal/domain/entity"
)

// StatsRepository serves the dashboard's read-only aggregates and the public
// visit counter.
type StatsRepository interface {
	RecordVisit(ctx context.Context, ipAddress string) error

	// VisitStats returns per-day visit counts for the trailing window,
	// oldest day first.
	VisitStats(ctx context.Context, days int) ([]entity.VisitBucket, error)

	Totals(ctx context.Context) (*entity.SiteTotals, error)
}
