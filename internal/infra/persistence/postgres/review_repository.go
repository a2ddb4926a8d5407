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

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update rewrites the fields except the avatar column.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return repo.update(ctx, review.ID, map[string]any{
		"author":      review.Author,
		"rating":      review.Rating,
		"text":        review.Text,
		"review_date": review.ReviewDate,
	})
}

// UpdateWithAvatar rewrites the fields including the avatar column.
func (repo *reviewRepository) UpdateWithAvatar(ctx context.Context, review *entity.Review) error {
	return repo.update(ctx, review.ID, map[string]any{
		"author":      review.Author,
		"avatar":      review.Avatar,
		"rating":      review.Rating,
		"text":        review.Text,
		"review_date": review.ReviewDate,
	})
}

func (repo *reviewRepository) update(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// FindByID retrieves a single review.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// List returns every review, newest first.
func (repo *reviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	var models []model.ReviewModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReviewDomain(&models[i]))
	}

	return reviews, nil
}

// Delete removes the row permanently.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mappers between persistence models and domain entities ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:         data.ID,
		Author:     data.Author,
		Avatar:     data.Avatar,
		Rating:     data.Rating,
		Text:       data.Text,
		ReviewDate: data.ReviewDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:         data.ID,
		Author:     data.Author,
		Avatar:     data.Avatar,
		Rating:     data.Rating,
		Text:       data.Text,
		ReviewDate: data.ReviewDate,
	}
}
