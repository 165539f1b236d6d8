package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/catalog"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// ProductService handles product administration and storefront catalog reads
type ProductService struct {
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	orderRepo   order.Repository
	txManager   shared.TransactionManager
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	orderRepo order.Repository,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		variantRepo: variantRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SLUG_TAKEN", "A product with this slug already exists")
	}

	price := valueobject.NewMoneyUSD(req.BasePrice)
	product, err := catalog.NewProduct(req.Slug, req.Name, price, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update updates a product's basic information
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if req.BasePrice != nil {
		if err := product.SetBasePrice(valueobject.NewMoneyUSD(*req.BasePrice)); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product with its images and variants
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetBySlug retrieves a product by its storefront slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductListItemResponse, int64, error) {
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
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductListItemResponses(products), total, nil
}

// Publish makes a product visible on the storefront
func (s *ProductService) Publish(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	return s.transition(ctx, id, (*catalog.Product).Publish)
}

// Unpublish moves a product back to draft
func (s *ProductService) Unpublish(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	return s.transition(ctx, id, (*catalog.Product).Unpublish)
}

func (s *ProductService) transition(ctx context.Context, id uuid.UUID, fn func(*catalog.Product) error) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(product); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// AddImage attaches an image to a product
func (s *ProductService) AddImage(ctx context.Context, id uuid.UUID, req AddImageRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.AddImage(req.URL, req.AltText); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// SetPrimaryImage marks an image as the product's primary image
func (s *ProductService) SetPrimaryImage(ctx context.Context, id, imageID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.SetPrimaryImage(imageID); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product, subject to the order-history guard. When any of
// the product's variants is referenced by an order item the product is
// unpublished and its variants archived instead of deleted, so historical
// orders keep resolving. Otherwise the product, its images, and its variants
// are removed for good.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	referenced := false
	for idx := range product.Variants {
		count, err := s.orderRepo.CountItemsByVariant(ctx, product.Variants[idx].ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			referenced = true
			break
		}
	}

	if referenced {
		if err := s.archiveProduct(ctx, product); err != nil {
			return nil, err
		}
		return &DeleteResponse{ID: id, Outcome: OutcomeArchived}, nil
	}

	err = s.txManager.Transaction(ctx, func(txCtx context.Context) error {
		for idx := range product.Variants {
			if err := s.variantRepo.Delete(txCtx, product.Variants[idx].ID); err != nil {
				return err
			}
		}
		if err := s.productRepo.DeleteImages(txCtx, id); err != nil {
			return err
		}
		return s.productRepo.Delete(txCtx, id)
	})
	if err != nil {
		// An order slipped in between the pre-check and the delete.
		if errors.Is(err, shared.ErrReferenced) {
			if err := s.archiveProduct(ctx, product); err != nil {
				return nil, err
			}
			return &DeleteResponse{ID: id, Outcome: OutcomeArchived}, nil
		}
		return nil, err
	}

	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return &DeleteResponse{ID: id, Outcome: OutcomeDeleted}, nil
}

// archiveProduct unpublishes the product and archives all its variants
func (s *ProductService) archiveProduct(ctx context.Context, product *catalog.Product) error {
	return s.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if product.IsActive() {
			if err := product.Unpublish(); err != nil {
				return err
			}
			if err := s.productRepo.Save(txCtx, product); err != nil {
				return err
			}
		}
		for idx := range product.Variants {
			variant := product.Variants[idx]
			if variant.IsArchived() {
				continue
			}
			variant.Archive()
			if err := s.variantRepo.Save(txCtx, &variant); err != nil {
				return err
			}
		}
		s.logger.Info("product archived instead of deleted",
			zap.String("product_id", product.ID.String()),
		)
		return nil
	})
}
