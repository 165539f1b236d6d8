package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles order history reads and admin fulfillment operations
type Service struct {
	orderRepo order.Repository
	logger    *zap.Logger
}

// NewService creates a new order Service
func NewService(orderRepo order.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ListByUser returns a user's order history, newest first
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]ListItemResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.DefaultFilter()
	filter.Page = page
	filter.PageSize = pageSize

	orders, err := s.orderRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return ToListItemResponses(orders), total, nil
}

// GetForUser returns one of the user's orders by order number. Another
// user's order number behaves as if it does not exist.
func (s *Service) GetForUser(ctx context.Context, userID uuid.UUID, orderNumber string) (*DetailResponse, error) {
	o, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrNotFound
	}
	response := ToDetailResponse(o)
	return &response, nil
}

// List retrieves orders with filtering and pagination for admin views
func (s *Service) List(ctx context.Context, filter ListFilter) ([]ListItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}
	if filter.UserID != nil {
		domainFilter.Filters["user_id"] = *filter.UserID
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToListItemResponses(orders), total, nil
}

// GetByID retrieves an order with its items and address for admin views
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*DetailResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToDetailResponse(o)
	return &response, nil
}

// UpdateStatus moves an order through its fulfillment machine
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*DetailResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	if err := o.TransitionTo(order.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order status changed",
		zap.String("order_number", o.OrderNumber),
		zap.String("from", previous.String()),
		zap.String("to", o.Status.String()),
	)

	response := ToDetailResponse(o)
	return &response, nil
}

// UpdateNotes sets the admin notes on an order
func (s *Service) UpdateNotes(ctx context.Context, id uuid.UUID, req UpdateNotesRequest) (*DetailResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	o.UpdateNotes(req.Notes)
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToDetailResponse(o)
	return &response, nil
}
