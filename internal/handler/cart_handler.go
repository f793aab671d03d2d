package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/service"
)

// CartHandler handles cart requests. All routes require authentication and
// operate on the caller's own cart.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles retrieving the caller's cart
func (h *CartHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	view, err := h.cartService.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

// AddItem handles adding a product to the caller's cart
func (h *CartHandler) AddItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

// UpdateItem handles replacing a cart line quantity
func (h *CartHandler) UpdateItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.cartService.UpdateItem(c.Request.Context(), user.ID, itemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

// RemoveItem handles removing a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}

	view, err := h.cartService.RemoveItem(c.Request.Context(), user.ID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(view))
}

// Clear handles emptying the caller's cart
func (h *CartHandler) Clear(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Cart cleared"})
}
