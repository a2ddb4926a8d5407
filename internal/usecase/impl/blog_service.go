package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/domain/service"
	"gaspass/internal/errors"
	"gaspass/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	blogRepo  repository.BlogRepository
	storage   service.MediaStorage
	logger    *slog.Logger
}

// BlogServiceParams holds dependencies for blogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BlogRepo  repository.BlogRepository
	Storage   service.MediaStorage
	Logger    *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		blogRepo:  params.BlogRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new post together with its tag associations. The cover
// image, when present, is uploaded before any row is written; the post row,
// the tag upserts and the association rows commit or roll back as one unit.
func (srv *blogService) Create(ctx context.Context, input usecase.BlogWriteInput) (*entity.BlogPost, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	image, err := srv.uploadImage(ctx, input.ImageFile)
	if err != nil {
		return nil, err
	}

	post := &entity.BlogPost{
		Title:        input.Title,
		Excerpt:      input.Excerpt,
		Content:      input.Content,
		Author:       input.Author,
		Image:        image,
		ImageCaption: input.ImageCaption,
		ReadingTime:  input.ReadingTime,
		CategoryID:   input.CategoryID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBlogRepository().Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create blog post")
		}

		return srv.reconcileTags(ctx, repoFactory.NewTaxonomyRepository(), post.ID, input.Tags)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Blog post created", slog.String("post_id", post.ID.String()))

	return srv.Get(ctx, post.ID)
}

// Update replaces the post's fields and reconciles its tag set. When no new
// cover image is uploaded the stored one is kept.
func (srv *blogService) Update(ctx context.Context, id uuid.UUID, input usecase.BlogWriteInput) (*entity.BlogPost, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	current, err := srv.blogRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBlogPostNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("blog post not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up blog post")
	}

	image := current.Image
	if input.ImageFile != nil {
		image, err = srv.uploadImage(ctx, input.ImageFile)
		if err != nil {
			return nil, err
		}
	}

	post := &entity.BlogPost{
		ID:           id,
		Title:        input.Title,
		Excerpt:      input.Excerpt,
		Content:      input.Content,
		Author:       input.Author,
		Image:        image,
		ImageCaption: input.ImageCaption,
		ReadingTime:  input.ReadingTime,
		CategoryID:   input.CategoryID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBlogRepository().Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update blog post")
		}

		return srv.reconcileTags(ctx, repoFactory.NewTaxonomyRepository(), id, input.Tags)
	})
	if err != nil {
		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *blogService) Get(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	post, err := srv.blogRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBlogPostNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("blog post not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up blog post")
	}

	return post, nil
}

func (srv *blogService) List(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := srv.blogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return posts, nil
}

func (srv *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.blogRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrBlogPostNotFound) {
		return domainerrors.ErrNotFound.WithDetails("blog post not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete blog post")
	}

	return nil
}

// reconcileTags upserts every distinct tag name and replaces the post's
// association set with exactly those tags. Duplicate names collapse to a
// single association; an empty list clears the set.
func (srv *blogService) reconcileTags(ctx context.Context, taxonomyRepo repository.TaxonomyRepository, postID uuid.UUID, names []string) error {
	seen := make(map[string]struct{}, len(names))
	tagIDs := make([]uuid.UUID, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		tag, _, err := taxonomyRepo.UpsertTagByName(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "failed to upsert tag %q", name)
		}

		tagIDs = append(tagIDs, tag.ID)
	}

	if err := taxonomyRepo.ReplacePostTags(ctx, postID, tagIDs); err != nil {
		return errors.Wrap(err, "failed to replace post tags")
	}

	return nil
}

func (srv *blogService) uploadImage(ctx context.Context, file *service.MediaUpload) (string, error) {
	if file == nil {
		return "", nil
	}

	url, err := srv.storage.Upload(ctx, *file)
	if err != nil {
		srv.log(ctx).Error("Cover image upload failed",
			slog.String("filename", file.Filename),
			slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed
	}

	return url, nil
}

func validateBlogInput(input usecase.BlogWriteInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}
	if strings.TrimSpace(input.Content) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("content must not be empty")
	}

	return nil
}
