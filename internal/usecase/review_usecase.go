package usecase

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/domain/service"

	"github.com/google/uuid"
)

// ReviewWriteInput carries the fields of a customer review. AvatarFile is
// optional; on update, a nil AvatarFile leaves the stored avatar untouched.
type ReviewWriteInput struct {
	Author     string
	Rating     float64
	Text       string
	ReviewDate string
	AvatarFile *service.MediaUpload
}

// ReviewUsecase defines the interface for customer review management.
type ReviewUsecase interface {
	Create(ctx context.Context, input ReviewWriteInput) (*entity.Review, error)
	Update(ctx context.Context, id uuid.UUID, input ReviewWriteInput) (*entity.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context) ([]*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
