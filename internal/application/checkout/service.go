package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/cart"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// Service materializes a session cart into a durable order. The address
// snapshot, any fabricated catalog entries, and the order itself are written
// in one transaction; the cart is only cleared after the order is committed.
type Service struct {
	store       cart.Store
	resolver    *Resolver
	orderRepo   order.Repository
	addressRepo order.AddressRepository
	txManager   shared.TransactionManager
	policy      order.PricingPolicy
	logger      *zap.Logger
}

// NewService creates a new checkout Service
func NewService(
	store cart.Store,
	resolver *Resolver,
	orderRepo order.Repository,
	addressRepo order.AddressRepository,
	txManager shared.TransactionManager,
	policy order.PricingPolicy,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:       store,
		resolver:    resolver,
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		txManager:   txManager,
		policy:      policy,
		logger:      logger,
	}
}

// Submit turns the session's cart into a PENDING order. Item prices come
// from the cart line snapshots, never from the live catalog, so the customer
// pays what they were shown. Shipping and tax are recomputed server-side
// from the pricing policy; client-supplied totals are ignored.
func (s *Service) Submit(ctx context.Context, sessionID string, userID uuid.UUID, req SubmitRequest) (*OrderResponse, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot check out an empty cart")
	}

	var created *order.Order
	err = s.txManager.Transaction(ctx, func(txCtx context.Context) error {
		address, err := order.NewAddress(req.FirstName, req.LastName, req.Street, req.City, req.State, req.PostalCode, req.Phone)
		if err != nil {
			return err
		}
		if err := s.addressRepo.Save(txCtx, address); err != nil {
			return err
		}

		items := make([]order.Item, 0, len(c.Lines))
		for idx := range c.Lines {
			line := c.Lines[idx]
			variant, err := s.resolver.Resolve(txCtx, line)
			if err != nil {
				return err
			}
			item, err := order.NewItem(variant.ID, line.Quantity, valueobject.NewMoneyUSD(line.Product.Price))
			if err != nil {
				return err
			}
			items = append(items, *item)
		}

		charges := s.policy.Quote(c.TotalPrice().Amount())
		shipping := valueobject.NewMoneyUSD(charges.Shipping)
		tax := valueobject.NewMoneyUSD(charges.Tax)

		created, err = order.NewOrder(order.GenerateOrderNumber(), userID, req.Email, address.ID, items, shipping, tax)
		if err != nil {
			return err
		}
		created.Address = address

		return s.orderRepo.Save(txCtx, created)
	})
	if err != nil {
		return nil, err
	}

	// The order is durable; a failure to clear the cart is recoverable noise.
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	s.logger.Info("order created",
		zap.String("order_number", created.OrderNumber),
		zap.String("order_id", created.ID.String()),
		zap.Int("items", created.ItemCount()),
		zap.String("total", created.Total.String()),
	)

	response := ToOrderResponse(created)
	return &response, nil
}

// Confirmation returns the order for a confirmation page lookup. Orders are
// only visible to the user who placed them.
func (s *Service) Confirmation(ctx context.Context, userID uuid.UUID, orderNumber string) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrNotFound
	}
	response := ToOrderResponse(o)
	return &response, nil
}
