package usecase

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/domain/service"

	"github.com/google/uuid"
)

// BlogWriteInput carries the fields of a blog post. Tags is the full desired
// tag-name set; the service upserts each name and replaces the association
// set in the same transaction as the post write. ImageFile, when present,
// is uploaded and replaces the stored image URL.
type BlogWriteInput struct {
	Title        string
	Excerpt      string
	Content      string
	Author       string
	ImageCaption string
	ReadingTime  int
	CategoryID   *uuid.UUID
	Tags         []string
	ImageFile    *service.MediaUpload
}

// BlogUsecase defines the interface for blog post management.
type BlogUsecase interface {
	Create(ctx context.Context, input BlogWriteInput) (*entity.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, input BlogWriteInput) (*entity.BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	List(ctx context.Context) ([]*entity.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
