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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	storage    service.MediaStorage
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Storage    service.MediaStorage
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		storage:    params.Storage,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) Create(ctx context.Context, input usecase.ReviewWriteInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	avatar, err := srv.uploadAvatar(ctx, input.AvatarFile)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		Author:     input.Author,
		Avatar:     avatar,
		Rating:     input.Rating,
		Text:       input.Text,
		ReviewDate: input.ReviewDate,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created", slog.String("review_id", review.ID.String()))

	return review, nil
}

// Update replaces the review's fields. The avatar column is only touched
// when a new file was uploaded; the two cases use distinct fixed-column
// writes rather than a dynamically assembled statement.
func (srv *reviewService) Update(ctx context.Context, id uuid.UUID, input usecase.ReviewWriteInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:         id,
		Author:     input.Author,
		Rating:     input.Rating,
		Text:       input.Text,
		ReviewDate: input.ReviewDate,
	}

	var err error
	if input.AvatarFile != nil {
		review.Avatar, err = srv.uploadAvatar(ctx, input.AvatarFile)
		if err != nil {
			return nil, err
		}
		err = srv.reviewRepo.UpdateWithAvatar(ctx, review)
	} else {
		err = srv.reviewRepo.Update(ctx, review)
	}
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("review not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return srv.Get(ctx, id)
}

func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("review not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up review")
	}

	return review, nil
}

func (srv *reviewService) List(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.reviewRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return domainerrors.ErrNotFound.WithDetails("review not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func (srv *reviewService) uploadAvatar(ctx context.Context, file *service.MediaUpload) (string, error) {
	if file == nil {
		return "", nil
	}

	url, err := srv.storage.Upload(ctx, *file)
	if err != nil {
		srv.log(ctx).Error("Avatar upload failed",
			slog.String("filename", file.Filename),
			slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed
	}

	return url, nil
}

func validateReviewInput(input usecase.ReviewWriteInput) error {
	if strings.TrimSpace(input.Author) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("author must not be empty")
	}
	if input.Rating < 0 || input.Rating > 5 {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 0 and 5")
	}

	return nil
}
