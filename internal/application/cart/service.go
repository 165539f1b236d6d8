package cart

import (
	"context"
	"errors"

	"github.com/jadefire/storefront/internal/domain/cart"
	"github.com/jadefire/storefront/internal/domain/catalog"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles session cart operations. Every mutation loads the cart,
// applies the transition, saves, and returns the updated cart with its
// server-computed summary.
type Service struct {
	store        cart.Store
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	policy       order.PricingPolicy
	logger       *zap.Logger
}

// NewService creates a new cart Service
func NewService(store cart.Store, productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository, policy order.PricingPolicy, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:        store,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		policy:       policy,
		logger:       logger,
	}
}

// Get returns the session's cart
func (s *Service) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(c, s.policy)
	return &response, nil
}

// AddItem adds a product to the session's cart. The snapshot stored on the
// line is built server-side from the live catalog so the client cannot dictate
// the price. Quantity is clamped to the matching variant's stock when the
// product has variants.
func (s *Service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available")
	}

	snapshot, err := s.buildSnapshot(ctx, product)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if variant := s.matchVariant(product, req.Size); variant != nil {
		if !variant.IsSellable() {
			return nil, shared.NewDomainError("OUT_OF_STOCK", "Selected size is out of stock")
		}
		snapshot.Price = variant.Price
		if quantity > variant.StockQuantity {
			quantity = variant.StockQuantity
		}
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := c.AddItem(snapshot, quantity, req.Size); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.logger.Debug("cart item added",
		zap.String("session_id", sessionID),
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", quantity),
	)

	response := ToCartResponse(c, s.policy)
	return &response, nil
}

// UpdateQuantity sets a line's quantity; zero removes the line
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, req UpdateQuantityRequest) (*CartResponse, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	size := normalizeSize(req.Size)
	c.UpdateQuantity(req.ProductID, size, req.Quantity)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	response := ToCartResponse(c, s.policy)
	return &response, nil
}

// RemoveItem removes a line; removing an absent line is a no-op
func (s *Service) RemoveItem(ctx context.Context, sessionID string, req RemoveItemRequest) (*CartResponse, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(req.ProductID, normalizeSize(req.Size))

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	response := ToCartResponse(c, s.policy)
	return &response, nil
}

// Clear empties the session's cart
func (s *Service) Clear(ctx context.Context, sessionID string) (*CartResponse, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Clear()

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	response := ToCartResponse(c, s.policy)
	return &response, nil
}

// SetOpen shows or hides the cart drawer
func (s *Service) SetOpen(ctx context.Context, sessionID string, open bool) (*CartResponse, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if open {
		c.Open()
	} else {
		c.Close()
	}

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	response := ToCartResponse(c, s.policy)
	return &response, nil
}

// Toggle flips the cart drawer visibility
func (s *Service) Toggle(ctx context.Context, sessionID string) (*CartResponse, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Toggle()

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	response := ToCartResponse(c, s.policy)
	return &response, nil
}

// buildSnapshot captures the denormalized product fields stored on a cart line
func (s *Service) buildSnapshot(ctx context.Context, product *catalog.Product) (cart.ProductSnapshot, error) {
	snapshot := cart.ProductSnapshot{
		ProductID: product.ID,
		Slug:      product.Slug,
		Name:      product.Name,
		Price:     product.BasePrice,
	}

	if image := product.PrimaryImage(); image != nil {
		snapshot.Image = image.URL
	}

	for idx := range product.Variants {
		snapshot.Sizes = append(snapshot.Sizes, product.Variants[idx].Size)
	}

	category, err := s.categoryRepo.FindByID(ctx, product.CategoryID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return cart.ProductSnapshot{}, err
		}
	} else {
		snapshot.Category = category.Name
	}

	return snapshot, nil
}

// matchVariant picks the variant the customer is buying for stock clamping:
// the exact size when one is selected, otherwise the first variant.
func (s *Service) matchVariant(product *catalog.Product, size string) *catalog.Variant {
	if size != "" && size != cart.NoSizeSelected {
		return product.FindVariantBySize(size)
	}
	return product.FirstVariant()
}

// normalizeSize maps an empty size to the stored no-size label so lookups hit
// the same line identity AddItem created
func normalizeSize(size string) string {
	if size == "" {
		return cart.NoSizeSelected
	}
	return size
}
