package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	orderingapp "github.com/plaudstore/backend/internal/application/ordering"
	"github.com/plaudstore/backend/internal/interfaces/http/dto"
)

// OrderHandler handles order submission
type OrderHandler struct {
	BaseHandler
	orders *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /api/create-order
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderingapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderCreatedResponse{
		OK:        true,
		OrderID:   result.OrderID.String(),
		CreatedAt: result.CreatedAt,
	})
}
