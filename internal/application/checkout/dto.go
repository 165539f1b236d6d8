package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
)

// SubmitRequest represents a checkout form submission
type SubmitRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required,min=1,max=100"`
	LastName   string `json:"last_name" binding:"required,min=1,max=100"`
	Street     string `json:"street" binding:"required,min=1,max=300"`
	City       string `json:"city" binding:"required,min=1,max=100"`
	State      string `json:"state" binding:"required,min=1,max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	Phone      string `json:"phone" binding:"max=30"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	VariantID uuid.UUID       `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// AddressResponse represents the shipping address snapshot on an order
type AddressResponse struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// OrderResponse represents a materialized order in API responses
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"order_number"`
	Email       string              `json:"email"`
	Items       []OrderItemResponse `json:"items"`
	Address     *AddressResponse    `json:"address,omitempty"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Shipping    decimal.Decimal     `json:"shipping"`
	Tax         decimal.Decimal     `json:"tax"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"status"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ToOrderResponse maps an order to the API representation
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for idx := range o.Items {
		item := &o.Items[idx]
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal(),
		})
	}

	response := OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Email:       o.Email,
		Items:       items,
		Subtotal:    o.Subtotal,
		Shipping:    o.ShippingCost,
		Tax:         o.Tax,
		Total:       o.Total,
		Status:      o.Status.String(),
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
	}

	if o.Address != nil {
		response.Address = &AddressResponse{
			FirstName:  o.Address.FirstName,
			LastName:   o.Address.LastName,
			Street:     o.Address.Street,
			City:       o.Address.City,
			State:      o.Address.State,
			PostalCode: o.Address.PostalCode,
			Phone:      o.Address.Phone,
		}
	}

	return response
}
