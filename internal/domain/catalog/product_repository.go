package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
)

// ProductRepository defines the persistence operations for products.
// Find methods load the product with its images and variants.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Product, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteImages(ctx context.Context, productID uuid.UUID) error
}
