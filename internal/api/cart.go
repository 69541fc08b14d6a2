package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/pkg/middleware"
)

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	userID := middleware.UserID(c)
	if err := h.cart.AddLine(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

func (h *CartHandler) List(c *gin.Context) {
	items, err := h.cart.ListItems(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_items": items})
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID := middleware.UserID(c)
	if err := h.cart.RemoveLine(c.Request.Context(), userID, c.Param("product_id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}
