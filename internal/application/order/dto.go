package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/application/checkout"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
)

// ListFilter represents filter options for order listing
type ListFilter struct {
	Status    *string    `form:"status" binding:"omitempty,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
	UserID    *uuid.UUID `form:"user_id"`
	StartDate *time.Time `form:"start_date"`
	EndDate   *time.Time `form:"end_date"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UpdateStatusRequest represents a request to move an order through its
// status machine
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
}

// UpdateNotesRequest represents a request to set the admin notes on an order
type UpdateNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// ListItemResponse represents an order in list responses
type ListItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	Email       string          `json:"email"`
	ItemCount   int             `json:"item_count"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToListItemResponses maps orders to the list representation
func ToListItemResponses(orders []order.Order) []ListItemResponse {
	responses := make([]ListItemResponse, 0, len(orders))
	for idx := range orders {
		o := &orders[idx]
		responses = append(responses, ListItemResponse{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Email:       o.Email,
			ItemCount:   o.ItemCount(),
			Total:       o.Total,
			Status:      o.Status.String(),
			CreatedAt:   o.CreatedAt,
		})
	}
	return responses
}

// Detail responses reuse the checkout package's order mapping so the
// confirmation page and the order history render identically.
type DetailResponse = checkout.OrderResponse

// ToDetailResponse maps an order to the detail representation
func ToDetailResponse(o *order.Order) DetailResponse {
	return checkout.ToOrderResponse(o)
}
