package handler

import (
	catalogapp "github.com/jadefire/storefront/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VariantHandler handles admin variant API endpoints, including the guarded
// delete that archives variants referenced by order history.
type VariantHandler struct {
	BaseHandler
	variantService *catalogapp.VariantService
}

// NewVariantHandler creates a new VariantHandler
func NewVariantHandler(variantService *catalogapp.VariantService) *VariantHandler {
	return &VariantHandler{
		variantService: variantService,
	}
}

// ListByProduct returns all variants of a product
func (h *VariantHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	variants, err := h.variantService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, variants)
}

// Create creates a new variant under a product
func (h *VariantHandler) Create(c *gin.Context) {
	var req catalogapp.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.variantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update updates a variant's price, stock, or color
func (h *VariantHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	var req catalogapp.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.variantService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Restore re-enables an archived variant with fresh stock
func (h *VariantHandler) Restore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	var req catalogapp.RestoreVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.variantService.Restore(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a variant, or archives it when order items reference it
func (h *VariantHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	resp, err := h.variantService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterAdminRoutes registers the admin variant routes
func (h *VariantHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	variants := rg.Group("/variants")
	{
		variants.POST("", h.Create)
		variants.PUT("/:id", h.Update)
		variants.POST("/:id/restore", h.Restore)
		variants.DELETE("/:id", h.Delete)
	}
	rg.GET("/products/:id/variants", h.ListByProduct)
}
