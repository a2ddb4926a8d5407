package repository

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/errors"

	"github.com/google/uuid"
)

var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogRepository persists articles. Tag associations are handled by the
// TaxonomyRepository inside the same transaction as the row write.
type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	List(ctx context.Context) ([]*entity.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
