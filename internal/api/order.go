package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/pkg/middleware"
)

type OrderHandler struct {
	orders *service.OrderService
	admin  *service.AdminService
}

func NewOrderHandler(orders *service.OrderService, admin *service.AdminService) *OrderHandler {
	return &OrderHandler{orders: orders, admin: admin}
}

type createOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	userID := middleware.UserID(c)
	orderID, total, err := h.orders.CreateOrder(c.Request.Context(), userID, req.DeliveryAddress)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":     orderID,
		"total_amount": total,
	})
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.orders.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

func (h *OrderHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
