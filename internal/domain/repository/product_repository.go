package repository

import (
	"context"

	"gaspass/internal/domain/entity"
	"gaspass/internal/errors"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists catalog entries. Create and Update write the
// media column together with the scalar fields in a single statement.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
