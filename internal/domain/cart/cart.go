package cart

import (
	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// NoSizeSelected is the size label stored when an item is added without an
// explicit size choice.
const NoSizeSelected = "no size selected"

// ProductSnapshot holds the denormalized product fields captured at
// add-to-cart time. The snapshot price is what the customer was shown and is
// the price the order item is later charged at, regardless of catalog drift.
type ProductSnapshot struct {
	ProductID uuid.UUID       `json:"product_id"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Sizes     []string        `json:"sizes,omitempty"`
}

// Line is one (product, size) purchase-intent entry with a quantity
type Line struct {
	LineID   string          `json:"line_id"`
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size"`
}

// Key returns the identity key of the line
func (l *Line) Key() string {
	return LineKey(l.Product.ProductID, l.Size)
}

// Subtotal returns quantity times the snapshot price
func (l *Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineKey derives the line identity from product ID and size
func LineKey(productID uuid.UUID, size string) string {
	return productID.String() + ":" + size
}

// Cart is the purchase-intent state machine. All transitions are pure,
// synchronous mutations of the line list; persistence is handled separately
// by a Store adapter. The invariant maintained by every transition is that
// line identity (productID, size) stays unique within the cart.
type Cart struct {
	Lines  []Line `json:"lines"`
	IsOpen bool   `json:"is_open"`
}

// New returns an empty cart
func New() *Cart {
	return &Cart{Lines: make([]Line, 0)}
}

// AddItem adds quantity of a (product, size) to the cart. If a line with the
// same identity key exists its quantity is incremented; otherwise a new line
// is appended. Adding opens the cart drawer. No stock check is performed
// here; callers clamp quantity against live stock before calling.
func (c *Cart) AddItem(product ProductSnapshot, quantity int, size string) error {
	if product.ProductID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if size == "" {
		size = NoSizeSelected
	}

	key := LineKey(product.ProductID, size)
	for idx := range c.Lines {
		if c.Lines[idx].Key() == key {
			c.Lines[idx].Quantity += quantity
			c.IsOpen = true
			return nil
		}
	}

	c.Lines = append(c.Lines, Line{
		LineID:   key,
		Product:  product,
		Quantity: quantity,
		Size:     size,
	})
	c.IsOpen = true

	return nil
}

// RemoveItem deletes the matching line. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID, size string) {
	key := LineKey(productID, size)
	for idx := range c.Lines {
		if c.Lines[idx].Key() == key {
			c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or less behaves as RemoveItem. Callers are responsible for clamping to
// available stock.
func (c *Cart) UpdateQuantity(productID uuid.UUID, size string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, size)
		return
	}

	key := LineKey(productID, size)
	for idx := range c.Lines {
		if c.Lines[idx].Key() == key {
			c.Lines[idx].Quantity = quantity
			return
		}
	}
}

// Clear empties all lines. Called after a successful checkout submission.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
}

// Open shows the cart drawer
func (c *Cart) Open() {
	c.IsOpen = true
}

// Close hides the cart drawer
func (c *Cart) Close() {
	c.IsOpen = false
}

// Toggle flips the cart drawer visibility
func (c *Cart) Toggle() {
	c.IsOpen = !c.IsOpen
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems returns the sum of line quantities, computed on every read
func (c *Cart) TotalItems() int {
	total := 0
	for idx := range c.Lines {
		total += c.Lines[idx].Quantity
	}
	return total
}

// TotalPrice returns the sum of line subtotals using each line's snapshot
// price, computed on every read
func (c *Cart) TotalPrice() valueobject.Money {
	total := decimal.Zero
	for idx := range c.Lines {
		total = total.Add(c.Lines[idx].Subtotal())
	}
	return valueobject.NewMoneyUSD(total)
}

// FindLine returns the line with the given identity, or nil
func (c *Cart) FindLine(productID uuid.UUID, size string) *Line {
	key := LineKey(productID, size)
	for idx := range c.Lines {
		if c.Lines[idx].Key() == key {
			return &c.Lines[idx]
		}
	}
	return nil
}
