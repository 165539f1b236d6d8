package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Status represents the fulfillment status of an order
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false // Terminal states
	}
	return false
}

// Item is a line item on an order. VariantID is a reference, never owning:
// historical orders keep pointing at archived variants. Price is captured at
// order creation and never recomputed from the live variant price.
type Item struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates a new order item with the price captured at purchase time
func NewItem(variantID uuid.UUID, quantity int, price valueobject.Money) (*Item, error) {
	if variantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VARIANT", "Variant ID cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Item{
		ID:        uuid.New(),
		VariantID: variantID,
		Quantity:  quantity,
		Price:     price.Amount(),
		CreatedAt: time.Now(),
	}, nil
}

// Subtotal returns quantity times the captured price
func (i *Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the durable record of a checkout. It owns its items and its
// shipping address snapshot; after creation only status and notes may change.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Email        string          `gorm:"type:varchar(200);not null"`
	AddressID    uuid.UUID       `gorm:"type:uuid;not null"`
	Address      *Address        `gorm:"foreignKey:AddressID"`
	Items        []Item          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Tax          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status       Status          `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a PENDING order from resolved items and computed charges.
// Subtotal is derived from the items; total = subtotal + shipping + tax.
func NewOrder(orderNumber string, userID uuid.UUID, email string, addressID uuid.UUID, items []Item, shippingCost, tax valueobject.Money) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if addressID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Cannot create an order without items")
	}
	if shippingCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SHIPPING", "Shipping cost cannot be negative")
	}
	if tax.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX", "Tax cannot be negative")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		UserID:            userID,
		Email:             email,
		AddressID:         addressID,
		Items:             make([]Item, 0, len(items)),
		ShippingCost:      shippingCost.Amount(),
		Tax:               tax.Amount(),
		Status:            StatusPending,
	}

	subtotal := decimal.Zero
	for idx := range items {
		item := items[idx]
		item.OrderID = order.ID
		order.Items = append(order.Items, item)
		subtotal = subtotal.Add(item.Subtotal())
	}
	order.Subtotal = subtotal
	order.Total = subtotal.Add(order.ShippingCost).Add(order.Tax)

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// TransitionTo moves the order to the target status, enforcing the
// PENDING -> PROCESSING -> SHIPPED -> DELIVERED machine with CANCELLED
// reachable from PENDING and PROCESSING.
func (o *Order) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}

	oldStatus := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, oldStatus, target))

	return nil
}

// UpdateNotes sets the admin-editable free text on the order
func (o *Order) UpdateNotes(notes string) {
	o.Notes = notes
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// ItemCount returns the number of line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalQuantity returns the sum of item quantities
func (o *Order) TotalQuantity() int {
	total := 0
	for idx := range o.Items {
		total += o.Items[idx].Quantity
	}
	return total
}

// IsTerminal returns true if the order is delivered or cancelled
func (o *Order) IsTerminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}

// GetTotalMoney returns the order total as a Money value object
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Total)
}
