package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
)

// CategoryRepository defines the persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	// FindAny returns an arbitrary existing category, used by the checkout
	// resolver to attach a fabricated product. Returns shared.ErrNotFound
	// when no category exists at all.
	FindAny(ctx context.Context) (*Category, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
