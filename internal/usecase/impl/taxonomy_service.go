package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/errors"
	"gaspass/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// taxonomyService implements the TaxonomyUsecase interface.
type taxonomyService struct {
	taxonomyRepo repository.TaxonomyRepository
	logger       *slog.Logger
}

// TaxonomyServiceParams holds dependencies for taxonomyService, injected by Fx.
type TaxonomyServiceParams struct {
	fx.In

	TaxonomyRepo repository.TaxonomyRepository
	Logger       *slog.Logger
}

// NewTaxonomyService is the constructor for taxonomyService.
func NewTaxonomyService(params TaxonomyServiceParams) usecase.TaxonomyUsecase {
	return &taxonomyService{
		taxonomyRepo: params.TaxonomyRepo,
		logger:       params.Logger,
	}
}

func (srv *taxonomyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertTag creates the tag if absent and returns the stored row either way.
func (srv *taxonomyService) UpsertTag(ctx context.Context, input usecase.UpsertTagInput) (*entity.Tag, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tag name must not be empty")
	}

	tag, created, err := srv.taxonomyRepo.UpsertTagByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert tag")
	}
	if created {
		srv.log(ctx).Info("Tag created", slog.String("tag_id", tag.ID.String()), slog.String("name", tag.Name))
	}

	return tag, nil
}

func (srv *taxonomyService) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := srv.taxonomyRepo.ListTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

func (srv *taxonomyService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	err := srv.taxonomyRepo.DeleteTag(ctx, id)
	if errors.Is(err, repository.ErrTagNotFound) {
		return domainerrors.ErrNotFound.WithDetails("tag not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete tag")
	}

	return nil
}

// UpsertCategory creates the category if absent within its kind and returns
// the stored row either way.
func (srv *taxonomyService) UpsertCategory(ctx context.Context, input usecase.UpsertCategoryInput) (*entity.Category, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category kind")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name must not be empty")
	}

	category, created, err := srv.taxonomyRepo.UpsertCategoryByName(ctx, input.Kind, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert category")
	}
	if created {
		srv.log(ctx).Info("Category created",
			slog.String("category_id", category.ID.String()),
			slog.String("kind", string(input.Kind)),
			slog.String("name", category.Name))
	}

	return category, nil
}

func (srv *taxonomyService) ListCategories(ctx context.Context, kind repository.CategoryKind) ([]*entity.Category, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category kind")
	}

	categories, err := srv.taxonomyRepo.ListCategories(ctx, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *taxonomyService) DeleteCategory(ctx context.Context, kind repository.CategoryKind, id uuid.UUID) error {
	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown category kind")
	}

	err := srv.taxonomyRepo.DeleteCategory(ctx, kind, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrNotFound.WithDetails("category not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
