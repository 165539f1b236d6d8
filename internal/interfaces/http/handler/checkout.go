package handler

import (
	checkoutapp "github.com/jadefire/storefront/internal/application/checkout"
	"github.com/gin-gonic/gin"
	"github.com/jadefire/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout API endpoints. Submitting requires an
// authenticated user; the cart itself stays session-scoped.
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Submit materializes the session cart into a durable order
func (h *CheckoutHandler) Submit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req checkoutapp.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.checkoutService.Submit(c.Request.Context(), getSessionID(c), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// Confirmation returns the confirmation view of one of the user's orders
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.checkoutService.Confirmation(c.Request.Context(), userID, c.Param("orderNumber"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers all checkout routes. The group must carry JWT
// authentication; the cart session middleware is added here.
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.CartSession())
	{
		checkout.POST("", h.Submit)
		checkout.GET("/confirmation/:orderNumber", h.Confirmation)
	}
}
