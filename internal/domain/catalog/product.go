package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the publication status of a product
type ProductStatus string

const (
	ProductStatusActive ProductStatus = "active"
	ProductStatusDraft  ProductStatus = "draft"
)

// Product is the canonical catalog entry and the aggregate root for
// product-related operations. Sellable units are its variants.
type Product struct {
	shared.BaseAggregateRoot
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants    []Variant       `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductImage is an ordered image attached to a product; exactly one image
// per product is marked primary.
type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(200)"`
	SortOrder int       `gorm:"not null;default:0"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProduct creates a new product
func NewProduct(slug, name string, basePrice valueobject.Money, categoryID uuid.UUID) (*Product, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if basePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Slug:              slug,
		Name:              name,
		BasePrice:         basePrice.Amount(),
		CategoryID:        categoryID,
		Status:            ProductStatusActive,
		Images:            make([]ProductImage, 0),
		Variants:          make([]Variant, 0),
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetBasePrice sets the product's base display price
func (p *Product) SetBasePrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}

	p.BasePrice = price.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetCategory moves the product to a different category
func (p *Product) SetCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}

	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Publish makes the product visible on the storefront
func (p *Product) Publish() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, ProductStatusDraft, ProductStatusActive))

	return nil
}

// Unpublish moves the product back to draft
func (p *Product) Unpublish() error {
	if p.Status == ProductStatusDraft {
		return shared.NewDomainError("ALREADY_DRAFT", "Product is already a draft")
	}

	p.Status = ProductStatusDraft
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, ProductStatusActive, ProductStatusDraft))

	return nil
}

// IsActive returns true if the product is visible on the storefront
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// AddImage appends an image; the first image added becomes primary
func (p *Product) AddImage(url, altText string) error {
	if url == "" {
		return shared.NewDomainError("INVALID_IMAGE", "Image URL cannot be empty")
	}
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE", "Image URL cannot exceed 500 characters")
	}

	image := ProductImage{
		ID:        uuid.New(),
		ProductID: p.ID,
		URL:       url,
		AltText:   altText,
		SortOrder: len(p.Images),
		IsPrimary: len(p.Images) == 0,
		CreatedAt: time.Now(),
	}

	p.Images = append(p.Images, image)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrimaryImage marks the given image as primary and clears the flag on all others
func (p *Product) SetPrimaryImage(imageID uuid.UUID) error {
	found := false
	for idx := range p.Images {
		if p.Images[idx].ID == imageID {
			p.Images[idx].IsPrimary = true
			found = true
		} else {
			p.Images[idx].IsPrimary = false
		}
	}
	if !found {
		return shared.NewDomainError("IMAGE_NOT_FOUND", "Product image not found")
	}

	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// PrimaryImage returns the primary image, or nil if the product has no images
func (p *Product) PrimaryImage() *ProductImage {
	for idx := range p.Images {
		if p.Images[idx].IsPrimary {
			return &p.Images[idx]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// GetBasePriceMoney returns the base price as a Money value object
func (p *Product) GetBasePriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.BasePrice)
}

// FindVariantBySize returns the variant with the exact size label, or nil
func (p *Product) FindVariantBySize(size string) *Variant {
	for idx := range p.Variants {
		if p.Variants[idx].Size == size {
			return &p.Variants[idx]
		}
	}
	return nil
}

// FirstVariant returns the first variant in catalog order, or nil if the
// product has none
func (p *Product) FirstVariant() *Variant {
	if len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}

// HasVariants returns true if the product has at least one variant
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// validateSlug validates a URL slug
func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 200 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 200 characters")
	}
	for _, r := range slug {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return shared.NewDomainError("INVALID_SLUG", "Slug can only contain lowercase letters, numbers, and hyphens")
		}
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
