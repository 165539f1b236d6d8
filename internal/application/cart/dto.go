package cart

import (
	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/cart"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest represents a request to change a line's quantity.
// A quantity of zero removes the line.
type UpdateQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity" binding:"min=0"`
}

// RemoveItemRequest represents a request to remove a cart line
type RemoveItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size"`
}

// LineResponse represents a cart line in API responses
type LineResponse struct {
	LineID    string          `json:"line_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category,omitempty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse represents the cart with its server-computed summary
type CartResponse struct {
	Lines                []LineResponse  `json:"lines"`
	IsOpen               bool            `json:"is_open"`
	TotalItems           int             `json:"total_items"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Shipping             decimal.Decimal `json:"shipping"`
	Tax                  decimal.Decimal `json:"tax"`
	Total                decimal.Decimal `json:"total"`
	AmountToFreeShipping decimal.Decimal `json:"amount_to_free_shipping"`
}

// ToCartResponse maps a cart and pricing policy to the API representation
func ToCartResponse(c *cart.Cart, policy order.PricingPolicy) CartResponse {
	lines := make([]LineResponse, 0, len(c.Lines))
	for idx := range c.Lines {
		line := &c.Lines[idx]
		lines = append(lines, LineResponse{
			LineID:    line.LineID,
			ProductID: line.Product.ProductID,
			Slug:      line.Product.Slug,
			Name:      line.Product.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			Image:     line.Product.Image,
			Category:  line.Product.Category,
			Subtotal:  line.Subtotal(),
		})
	}

	charges := policy.Quote(c.TotalPrice().Amount())

	return CartResponse{
		Lines:                lines,
		IsOpen:               c.IsOpen,
		TotalItems:           c.TotalItems(),
		Subtotal:             charges.Subtotal,
		Shipping:             charges.Shipping,
		Tax:                  charges.Tax,
		Total:                charges.Total,
		AmountToFreeShipping: policy.AmountToFreeShipping(charges.Subtotal),
	}
}
