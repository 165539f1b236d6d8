package checkout

import (
	"context"
	"errors"

	"github.com/jadefire/storefront/internal/domain/cart"
	"github.com/jadefire/storefront/internal/domain/catalog"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// ErrNoCategoriesConfigured is returned when a product must be fabricated but
// the catalog has no category to attach it to. This is an operator error, not
// a customer one.
var ErrNoCategoriesConfigured = shared.NewDomainError("NO_CATEGORIES_CONFIGURED", "Cannot fabricate a catalog entry: no categories configured")

// Resolver maps a cart line to a concrete catalog variant, fabricating
// catalog entries when the line references products the catalog does not
// know. The fallback ladder, most specific first:
//
//  1. product by slug, variant by exact size
//  2. product by slug, first variant
//  3. product by slug, fabricated variant for the line's size
//  4. fabricated product and variant, attached to any existing category
//
// Checkout never fails because the catalog is missing an entry; it only
// fails when there is no category to hang a fabricated product on.
type Resolver struct {
	productRepo  catalog.ProductRepository
	variantRepo  catalog.VariantRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewResolver creates a new Resolver
func NewResolver(productRepo catalog.ProductRepository, variantRepo catalog.VariantRepository, categoryRepo catalog.CategoryRepository, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Resolve returns the variant a cart line materializes into
func (r *Resolver) Resolve(ctx context.Context, line cart.Line) (*catalog.Variant, error) {
	product, err := r.productRepo.FindBySlug(ctx, line.Product.Slug)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		product, err = r.fabricateProduct(ctx, line)
		if err != nil {
			return nil, err
		}
	}

	if line.Size != cart.NoSizeSelected {
		if variant := product.FindVariantBySize(line.Size); variant != nil {
			return variant, nil
		}
	}
	if variant := product.FirstVariant(); variant != nil {
		return variant, nil
	}

	return r.fabricateVariant(ctx, product, line)
}

// fabricateProduct creates a minimal catalog entry for a cart line whose slug
// the catalog does not know, attached to an arbitrary existing category.
func (r *Resolver) fabricateProduct(ctx context.Context, line cart.Line) (*catalog.Product, error) {
	category, err := r.categoryRepo.FindAny(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrNoCategoriesConfigured
		}
		return nil, err
	}

	price := valueobject.NewMoneyUSD(line.Product.Price)
	product, err := catalog.NewProduct(line.Product.Slug, line.Product.Name, price, category.ID)
	if err != nil {
		return nil, err
	}
	if line.Product.Image != "" {
		if err := product.AddImage(line.Product.Image, line.Product.Name); err != nil {
			return nil, err
		}
	}

	if err := r.productRepo.Save(ctx, product); err != nil {
		// A concurrent checkout may have fabricated the same slug.
		if errors.Is(err, shared.ErrAlreadyExists) {
			return r.productRepo.FindBySlug(ctx, line.Product.Slug)
		}
		return nil, err
	}

	r.logger.Info("fabricated product for checkout",
		zap.String("slug", product.Slug),
		zap.String("product_id", product.ID.String()),
	)

	return product, nil
}

// fabricateVariant creates a provisional variant under an existing product so
// the order item has something concrete to reference
func (r *Resolver) fabricateVariant(ctx context.Context, product *catalog.Product, line cart.Line) (*catalog.Variant, error) {
	size := line.Size
	if size == cart.NoSizeSelected {
		size = catalog.DefaultSizeLabel
	}

	sku := catalog.GenerateSKU(product.Slug, size)
	price := valueobject.NewMoneyUSD(line.Product.Price)
	variant, err := catalog.NewVariant(product.ID, sku, size, price, catalog.ProvisionalStockQuantity)
	if err != nil {
		return nil, err
	}

	if err := r.variantRepo.Save(ctx, variant); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return r.variantRepo.FindBySKU(ctx, sku)
		}
		return nil, err
	}

	r.logger.Info("fabricated variant for checkout",
		zap.String("sku", variant.SKU),
		zap.String("product_id", product.ID.String()),
		zap.String("size", size),
	)

	return variant, nil
}
