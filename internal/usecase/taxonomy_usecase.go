package usecase

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/domain/repository"

	"github.com/google/uuid"
)

// UpsertTagInput names a tag to create or fetch.
type UpsertTagInput struct {
	Name string
}

// UpsertCategoryInput names a category to create or fetch within a kind.
type UpsertCategoryInput struct {
	Kind repository.CategoryKind
	Name string
}

// TaxonomyUsecase defines the interface for tag and category management.
// Upserts are reconciling: an existing name yields the existing row.
type TaxonomyUsecase interface {
	UpsertTag(ctx context.Context, input UpsertTagInput) (*entity.Tag, error)
	ListTags(ctx context.Context) ([]*entity.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error

	UpsertCategory(ctx context.Context, input UpsertCategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context, kind repository.CategoryKind) ([]*entity.Category, error)
	DeleteCategory(ctx context.Context, kind repository.CategoryKind, id uuid.UUID) error
}
