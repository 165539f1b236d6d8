package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/catalog"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// VariantService handles variant administration, including the guarded
// delete that protects order history
type VariantService struct {
	variantRepo catalog.VariantRepository
	productRepo catalog.ProductRepository
	orderRepo   order.Repository
	logger      *zap.Logger
}

// NewVariantService creates a new VariantService
func NewVariantService(
	variantRepo catalog.VariantRepository,
	productRepo catalog.ProductRepository,
	orderRepo order.Repository,
	logger *zap.Logger,
) *VariantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VariantService{
		variantRepo: variantRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// Create creates a new variant under a product. When no SKU is supplied one
// is derived from the product slug and size.
func (s *VariantService) Create(ctx context.Context, req CreateVariantRequest) (*VariantResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if existing := product.FindVariantBySize(req.Size); existing != nil {
		return nil, shared.NewDomainError("SIZE_TAKEN", "Product already has a variant with this size")
	}

	sku := req.SKU
	if sku == "" {
		sku = catalog.GenerateSKU(product.Slug, req.Size)
	}

	price := valueobject.NewMoneyUSD(req.Price)
	variant, err := catalog.NewVariant(product.ID, sku, req.Size, price, req.StockQuantity)
	if err != nil {
		return nil, err
	}
	if req.Color != "" {
		if err := variant.SetColor(req.Color); err != nil {
			return nil, err
		}
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// Update updates a variant's price, color, or stock
func (s *VariantService) Update(ctx context.Context, id uuid.UUID, req UpdateVariantRequest) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Color != nil {
		if err := variant.SetColor(*req.Color); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := variant.UpdatePrice(valueobject.NewMoneyUSD(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.CompareAtPrice != nil {
		if err := variant.SetCompareAtPrice(valueobject.NewMoneyUSD(*req.CompareAtPrice)); err != nil {
			return nil, err
		}
	}
	if req.StockQuantity != nil {
		if err := variant.SetStock(*req.StockQuantity); err != nil {
			return nil, err
		}
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// ListByProduct returns all variants of a product
func (s *VariantService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]VariantResponse, error) {
	variants, err := s.variantRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return ToVariantResponses(variants), nil
}

// Restore re-enables an archived variant with fresh stock
func (s *VariantService) Restore(ctx context.Context, id uuid.UUID, req RestoreVariantRequest) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := variant.Restore(req.StockQuantity); err != nil {
		return nil, err
	}
	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}
	response := ToVariantResponse(variant)
	return &response, nil
}

// Delete removes a variant, subject to the order-history guard. A variant
// referenced by any order item is archived, never hard-deleted, so
// historical orders keep resolving. The pre-check makes the outcome
// deterministic; the referential-integrity fallback covers an order placed
// between the check and the delete.
func (s *VariantService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.orderRepo.CountItemsByVariant(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return s.archive(ctx, variant, count)
	}

	if err := s.variantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrReferenced) {
			return s.archive(ctx, variant, 0)
		}
		return nil, err
	}

	s.logger.Info("variant deleted",
		zap.String("variant_id", id.String()),
		zap.String("sku", variant.SKU),
	)
	return &DeleteResponse{ID: id, Outcome: OutcomeDeleted}, nil
}

func (s *VariantService) archive(ctx context.Context, variant *catalog.Variant, references int64) (*DeleteResponse, error) {
	variant.Archive()
	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	s.logger.Info("variant archived instead of deleted",
		zap.String("variant_id", variant.ID.String()),
		zap.String("sku", variant.SKU),
		zap.Int64("order_item_references", references),
	)
	return &DeleteResponse{ID: variant.ID, Outcome: OutcomeArchived}, nil
}
