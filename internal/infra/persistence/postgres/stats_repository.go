package postgres

import (
	"context"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository implements the domain.StatsRepository interface using GORM.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// RecordVisit appends one visit row.
func (repo *statsRepository) RecordVisit(ctx context.Context, ipAddress string) error {
	visit := &model.SiteVisitModel{IPAddress: ipAddress}
	if err := repo.db.WithContext(ctx).Create(visit).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record visit")
	}

	return nil
}

// VisitStats aggregates visits per calendar day over the trailing window,
// oldest day first. Days without visits are absent from the result.
func (repo *statsRepository) VisitStats(ctx context.Context, days int) ([]entity.VisitBucket, error) {
	var buckets []entity.VisitBucket
	err := repo.db.WithContext(ctx).Raw(`
		SELECT to_char(date_trunc('day', visited_at), 'YYYY-MM-DD') AS day,
		       count(*) AS count
		FROM site_visits
		WHERE visited_at >= date_trunc('day', now()) - make_interval(days => ?)
		GROUP BY 1
		ORDER BY 1 ASC`, days-1).
		Scan(&buckets).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate visits")
	}

	return buckets, nil
}

// Totals counts the dashboard's headline rows.
func (repo *statsRepository) Totals(ctx context.Context) (*entity.SiteTotals, error) {
	totals := &entity.SiteTotals{}

	counts := []struct {
		target any
		dest   *int64
	}{
		{&model.UserModel{}, &totals.Users},
		{&model.ProductModel{}, &totals.Products},
		{&model.BlogPostModel{}, &totals.Blogs},
	}
	for _, c := range counts {
		if err := repo.db.WithContext(ctx).Model(c.target).Count(c.dest).Error; err != nil {
			return nil, errors.Wrap(err, "failed to count rows")
		}
	}

	return totals, nil
}
