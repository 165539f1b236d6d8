package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
)

// Repository defines the persistence operations for orders. Find methods
// load the order with its items and address.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Save(ctx context.Context, order *Order) error
	// CountItemsByVariant reports how many order items reference the
	// variant. The inventory mutation guard uses it as the explicit
	// order-history pre-check before deciding between hard delete and
	// soft archive.
	CountItemsByVariant(ctx context.Context, variantID uuid.UUID) (int64, error)
}

// AddressRepository defines the persistence operations for address snapshots
type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)
	Save(ctx context.Context, address *Address) error
}
