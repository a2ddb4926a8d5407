package usecase

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/domain/service"

	"github.com/google/uuid"
)

// ProductWriteInput carries the scalar fields of a product plus its media.
// ExistingMedia lists already-stored entries the caller wants to keep;
// NewFiles are uploaded and placed ahead of them, each group keeping
// request order.
type ProductWriteInput struct {
	Name          string
	Description   string
	Price         float64
	Stock         int
	Rating        float64
	Featured      bool
	CategoryID    *uuid.UUID
	ExistingMedia []entity.Media
	NewFiles      []service.MediaUpload
}

// ProductUsecase defines the interface for product catalog management.
type ProductUsecase interface {
	Create(ctx context.Context, input ProductWriteInput) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, input ProductWriteInput) (*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
