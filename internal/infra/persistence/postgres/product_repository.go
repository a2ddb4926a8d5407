package postgres

import (
	"context"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product, media column included.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update rewrites the scalar fields and the whole media list in one statement.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"stock":       productM.Stock,
			"rating":      productM.Rating,
			"featured":    productM.Featured,
			"category_id": productM.CategoryID,
			"media":       productM.Media,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a single product together with its category name.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// List returns the whole catalog, newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var models []model.ProductModel
	err := repo.db.WithContext(ctx).Preload("Category").Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products, nil
}

// Delete removes the row permanently. Stored media objects are not reaped.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mappers between persistence models and domain entities ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	media := make([]entity.Media, 0, len(data.Media))
	for _, item := range data.Media {
		media = append(media, entity.Media{URL: item.URL, Type: item.Type})
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Rating:      data.Rating,
		Featured:    data.Featured,
		CategoryID:  data.CategoryID,
		Media:       media,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Category != nil {
		product.CategoryName = data.Category.Name
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	media := make(model.MediaList, 0, len(data.Media))
	for _, item := range data.Media {
		media = append(media, model.MediaItem{URL: item.URL, Type: item.Type})
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Rating:      data.Rating,
		Featured:    data.Featured,
		CategoryID:  data.CategoryID,
		Media:       media,
	}
}
