package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// DeleteOutcome reports how a guarded delete resolved
type DeleteOutcome string

const (
	// OutcomeDeleted means the record had no order history and was removed
	OutcomeDeleted DeleteOutcome = "deleted"
	// OutcomeArchived means order history references the record, so it was
	// soft-archived instead of removed
	OutcomeArchived DeleteOutcome = "archived"
)

// DeleteResponse reports the outcome of a guarded delete
type DeleteResponse struct {
	ID      uuid.UUID     `json:"id"`
	Outcome DeleteOutcome `json:"outcome"`
}

// ==================== Category DTOs ====================

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Slug        string `json:"slug" binding:"required,slug,max=200"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sort_order"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse maps a category to the API representation
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses maps a slice of categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for idx := range categories {
		responses = append(responses, ToCategoryResponse(&categories[idx]))
	}
	return responses
}

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Slug        string          `json:"slug" binding:"required,slug,max=200"`
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price" binding:"required"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Description string           `json:"description"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	CategoryID  *uuid.UUID       `json:"category_id"`
}

// AddImageRequest represents a request to attach an image to a product
type AddImageRequest struct {
	URL     string `json:"url" binding:"required,max=500"`
	AltText string `json:"alt_text" binding:"max=200"`
}

// ProductListFilter represents filter options for product listing
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Status     *string    `form:"status" binding:"omitempty,oneof=active draft"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductImageResponse represents a product image in API responses
type ProductImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	AltText   string    `json:"alt_text,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsPrimary bool      `json:"is_primary"`
}

// VariantResponse represents a variant in API responses
type VariantResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	SKU            string          `json:"sku"`
	Size           string          `json:"size"`
	Color          string          `json:"color,omitempty"`
	Price          decimal.Decimal `json:"price"`
	CompareAtPrice decimal.Decimal `json:"compare_at_price"`
	StockQuantity  int             `json:"stock_quantity"`
	IsAvailable    bool            `json:"is_available"`
	IsSellable     bool            `json:"is_sellable"`
}

// ProductResponse represents a product with its images and variants
type ProductResponse struct {
	ID          uuid.UUID              `json:"id"`
	Slug        string                 `json:"slug"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	BasePrice   decimal.Decimal        `json:"base_price"`
	CategoryID  uuid.UUID              `json:"category_id"`
	Status      string                 `json:"status"`
	Images      []ProductImageResponse `json:"images"`
	Variants    []VariantResponse      `json:"variants"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ProductListItemResponse represents a product in list responses
type ProductListItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Slug       string          `json:"slug"`
	Name       string          `json:"name"`
	BasePrice  decimal.Decimal `json:"base_price"`
	CategoryID uuid.UUID       `json:"category_id"`
	Status     string          `json:"status"`
	Image      string          `json:"image,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToVariantResponse maps a variant to the API representation
func ToVariantResponse(v *catalog.Variant) VariantResponse {
	return VariantResponse{
		ID:             v.ID,
		ProductID:      v.ProductID,
		SKU:            v.SKU,
		Size:           v.Size,
		Color:          v.Color,
		Price:          v.Price,
		CompareAtPrice: v.CompareAtPrice,
		StockQuantity:  v.StockQuantity,
		IsAvailable:    v.IsAvailable,
		IsSellable:     v.IsSellable(),
	}
}

// ToVariantResponses maps a slice of variants
func ToVariantResponses(variants []catalog.Variant) []VariantResponse {
	responses := make([]VariantResponse, 0, len(variants))
	for idx := range variants {
		responses = append(responses, ToVariantResponse(&variants[idx]))
	}
	return responses
}

// ToProductResponse maps a product with its images and variants
func ToProductResponse(p *catalog.Product) ProductResponse {
	images := make([]ProductImageResponse, 0, len(p.Images))
	for idx := range p.Images {
		img := &p.Images[idx]
		images = append(images, ProductImageResponse{
			ID:        img.ID,
			URL:       img.URL,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
			IsPrimary: img.IsPrimary,
		})
	}

	return ProductResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		CategoryID:  p.CategoryID,
		Status:      string(p.Status),
		Images:      images,
		Variants:    ToVariantResponses(p.Variants),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListItemResponses maps products to the list representation
func ToProductListItemResponses(products []catalog.Product) []ProductListItemResponse {
	responses := make([]ProductListItemResponse, 0, len(products))
	for idx := range products {
		p := &products[idx]
		item := ProductListItemResponse{
			ID:         p.ID,
			Slug:       p.Slug,
			Name:       p.Name,
			BasePrice:  p.BasePrice,
			CategoryID: p.CategoryID,
			Status:     string(p.Status),
			CreatedAt:  p.CreatedAt,
		}
		if image := p.PrimaryImage(); image != nil {
			item.Image = image.URL
		}
		responses = append(responses, item)
	}
	return responses
}

// ==================== Variant DTOs ====================

// CreateVariantRequest represents a request to create a variant
type CreateVariantRequest struct {
	ProductID     uuid.UUID       `json:"product_id" binding:"required"`
	SKU           string          `json:"sku" binding:"omitempty,max=100"`
	Size          string          `json:"size" binding:"required,min=1,max=50"`
	Color         string          `json:"color" binding:"max=50"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stock_quantity" binding:"min=0"`
}

// UpdateVariantRequest represents a request to update a variant
type UpdateVariantRequest struct {
	Color          *string          `json:"color"`
	Price          *decimal.Decimal `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"`
	StockQuantity  *int             `json:"stock_quantity"`
}

// RestoreVariantRequest re-enables an archived variant with fresh stock
type RestoreVariantRequest struct {
	StockQuantity int `json:"stock_quantity" binding:"required,min=1"`
}
