package repository

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrTagNotFound      = errors.New("tag not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryKind selects which category table a taxonomy call targets.
type CategoryKind string

const (
	CategoryKindProduct CategoryKind = "product"
	CategoryKindBlog    CategoryKind = "blog"
)

// IsValid reports whether the kind is one of the two known tables.
func (k CategoryKind) IsValid() bool {
	return k == CategoryKindProduct || k == CategoryKindBlog
}

// TaxonomyRepository implements the reconciliation primitives: idempotent
// upsert-by-name and full association replace. Upserts follow the
// insert-on-conflict-then-read pattern so concurrent callers with the same
// name both observe the winner's row.
type TaxonomyRepository interface {
	// UpsertTagByName inserts the tag if absent and returns the stored row
	// either way; created reports whether this call inserted it.
	UpsertTagByName(ctx context.Context, name string) (tag *entity.Tag, created bool, err error)
	ListTags(ctx context.Context) ([]*entity.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error

	UpsertCategoryByName(ctx context.Context, kind CategoryKind, name string) (category *entity.Category, created bool, err error)
	ListCategories(ctx context.Context, kind CategoryKind) ([]*entity.Category, error)
	DeleteCategory(ctx context.Context, kind CategoryKind, id uuid.UUID) error

	// ReplacePostTags deletes every association row of the post and inserts
	// one row per given tag id, ignoring duplicate-pair conflicts. An empty
	// id list clears all associations.
	ReplacePostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error
}
