package catalog

import (
	"context"

	"github.com/google/uuid"
)

// VariantRepository defines the persistence operations for variants
type VariantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Variant, error)
	FindBySKU(ctx context.Context, sku string) (*Variant, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Variant, error)
	Save(ctx context.Context, variant *Variant) error
	// Delete hard-deletes the variant row. Callers must run the inventory
	// mutation guard first; a variant with order history is archived, not
	// deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
