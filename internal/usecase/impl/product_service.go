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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	storage     service.MediaStorage
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Storage     service.MediaStorage
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new product. Every new file is uploaded before any row is
// written; an upload failure aborts the whole operation.
func (srv *productService) Create(ctx context.Context, input usecase.ProductWriteInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	media, err := srv.assembleMedia(ctx, input)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Rating:      input.Rating,
		Featured:    input.Featured,
		CategoryID:  input.CategoryID,
		Media:       media,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()))

	return product, nil
}

// Update replaces the product's fields. The stored media list becomes the
// freshly uploaded entries followed by the kept existing ones, in request
// order; objects dropped from the list are not garbage collected.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input usecase.ProductWriteInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("product not found")
		}

		return nil, errors.Wrap(err, "failed to look up product")
	}

	media, err := srv.assembleMedia(ctx, input)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Rating:      input.Rating,
		Featured:    input.Featured,
		CategoryID:  input.CategoryID,
		Media:       media,
	}
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.Get(ctx, id)
}

func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("product not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up product")
	}

	return product, nil
}

func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.productRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrNotFound.WithDetails("product not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// assembleMedia uploads the new files and places them ahead of the kept
// existing entries, preserving request order within each group.
func (srv *productService) assembleMedia(ctx context.Context, input usecase.ProductWriteInput) ([]entity.Media, error) {
	media := make([]entity.Media, 0, len(input.ExistingMedia)+len(input.NewFiles))

	for _, file := range input.NewFiles {
		url, err := srv.storage.Upload(ctx, file)
		if err != nil {
			srv.log(ctx).Error("Media upload failed",
				slog.String("filename", file.Filename),
				slog.Any("error", err))

			return nil, domainerrors.ErrUploadFailed
		}

		media = append(media, entity.Media{URL: url, Type: mediaTypeFor(file.ContentType)})
	}

	return append(media, input.ExistingMedia...), nil
}

func validateProductInput(input usecase.ProductWriteInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name must not be empty")
	}
	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.Stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	return nil
}

// mediaTypeFor maps an upload's content type onto the stored media kind.
func mediaTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}

	return "image"
}
