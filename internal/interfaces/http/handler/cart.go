package handler

import (
	cartapp "github.com/jadefire/storefront/internal/application/cart"
	"github.com/gin-gonic/gin"
	"github.com/jadefire/storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart API endpoints. All routes are session-scoped via
// the cart session middleware; no authentication is required.
type CartHandler struct {
	BaseHandler
	cartService *cartapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// DrawerRequest sets the cart drawer visibility
type DrawerRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// Get returns the current cart with computed totals
func (h *CartHandler) Get(c *gin.Context) {
	resp, err := h.cartService.Get(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem adds a product line to the cart and opens the drawer
func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), getSessionID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateQuantity sets the quantity of a cart line; zero removes the line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req cartapp.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cartService.UpdateQuantity(c.Request.Context(), getSessionID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem removes a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req cartapp.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cartService.RemoveItem(c.Request.Context(), getSessionID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	resp, err := h.cartService.Clear(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetDrawer sets the cart drawer open state
func (h *CartHandler) SetDrawer(c *gin.Context) {
	var req DrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cartService.SetOpen(c.Request.Context(), getSessionID(c), *req.Open)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// ToggleDrawer flips the cart drawer open state
func (h *CartHandler) ToggleDrawer(c *gin.Context) {
	resp, err := h.cartService.Toggle(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(middleware.CartSession())
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items", h.UpdateQuantity)
		cart.DELETE("/items", h.RemoveItem)
		cart.DELETE("", h.Clear)
		cart.PUT("/drawer", h.SetDrawer)
		cart.POST("/drawer/toggle", h.ToggleDrawer)
	}
}
