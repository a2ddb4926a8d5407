package repository

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/errors"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists testimonials. Updates come in two fixed variants
// instead of a conditionally assembled column list: UpdateWithAvatar rewrites
// the avatar URL, Update leaves the stored one untouched.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	UpdateWithAvatar(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context) ([]*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
