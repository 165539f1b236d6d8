package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DefaultSizeLabel is used when a variant is fabricated for a cart line that
// carried no size information.
const DefaultSizeLabel = "One Size"

// ProvisionalStockQuantity is the stock assigned to variants fabricated by
// the checkout resolver.
const ProvisionalStockQuantity = 10

// Variant is the sellable unit of a product: a specific size/color
// combination carrying its own price, stock, and availability.
//
// A variant referenced by any order item must never be hard-deleted; it is
// archived instead (IsAvailable=false, StockQuantity=0) to preserve
// referential integrity with historical orders.
type Variant struct {
	shared.BaseAggregateRoot
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU            string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Size           string          `gorm:"type:varchar(50);not null"`
	Color          string          `gorm:"type:varchar(50)"`
	Price          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CompareAtPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	StockQuantity  int             `gorm:"not null;default:0"`
	IsAvailable    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Variant) TableName() string {
	return "variants"
}

// NewVariant creates a new variant under a product
func NewVariant(productID uuid.UUID, sku, size string, price valueobject.Money, stockQuantity int) (*Variant, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if size == "" {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size cannot be empty")
	}
	if len(size) > 50 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size cannot exceed 50 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	variant := &Variant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		SKU:               strings.ToUpper(sku),
		Size:              size,
		Price:             price.Amount(),
		StockQuantity:     stockQuantity,
		IsAvailable:       true,
	}

	variant.AddDomainEvent(NewVariantCreatedEvent(variant))

	return variant, nil
}

// SetColor sets the variant color
func (v *Variant) SetColor(color string) error {
	if len(color) > 50 {
		return shared.NewDomainError("INVALID_COLOR", "Color cannot exceed 50 characters")
	}

	v.Color = color
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// UpdatePrice updates the variant's selling price
func (v *Variant) UpdatePrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	v.Price = price.Amount()
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetCompareAtPrice sets the strike-through reference price
func (v *Variant) SetCompareAtPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Compare-at price cannot be negative")
	}

	v.CompareAtPrice = price.Amount()
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetStock sets the stock quantity
func (v *Variant) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	v.StockQuantity = quantity
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// Archive marks the variant unavailable with zero stock instead of deleting
// it. The transition is one-way from the guard's perspective; re-enabling
// requires an explicit Restore.
func (v *Variant) Archive() {
	v.IsAvailable = false
	v.StockQuantity = 0
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVariantArchivedEvent(v))
}

// Restore re-enables an archived variant with a positive stock quantity
func (v *Variant) Restore(stockQuantity int) error {
	if stockQuantity <= 0 {
		return shared.NewDomainError("INVALID_STOCK", "Restoring a variant requires a positive stock quantity")
	}

	v.IsAvailable = true
	v.StockQuantity = stockQuantity
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// IsSellable returns true if the variant can be selected at checkout
func (v *Variant) IsSellable() bool {
	return v.IsAvailable && v.StockQuantity > 0
}

// IsArchived returns true if the variant has been soft-archived
func (v *Variant) IsArchived() bool {
	return !v.IsAvailable
}

// GetPriceMoney returns the price as a Money value object
func (v *Variant) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(v.Price)
}

// GenerateSKU derives a unique SKU for a fabricated variant from the product
// slug and size label.
func GenerateSKU(slug, size string) string {
	base := strings.ToUpper(strings.ReplaceAll(slug, "-", ""))
	if len(base) > 12 {
		base = base[:12]
	}
	sizePart := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(size, "/", ""), " ", ""))
	if len(sizePart) > 8 {
		sizePart = sizePart[:8]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return base + "-" + sizePart + "-" + suffix
}

// validateSKU validates the variant SKU
func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 100 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 100 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
