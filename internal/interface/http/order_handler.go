package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/pkg/response"
	"github.com/oksasatya/go-commerce-api/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type createOrderRequest struct {
	Items       []string `json:"items" binding:"required,min=1"`
	UserID      string   `json:"userId" binding:"required"`
	TotalAmount float64  `json:"totalAmount" binding:"required,gt=0"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	order, err := h.Svc.CreateOrder(c.Request.Context(), application.CreateOrderInput{
		UserID:      req.UserID,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, order, "order created successfully", nil)
}

// GetOrder GET /orders/:orderId
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Svc.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, order, "order retrieved successfully", nil)
}

// ListOrders GET /orders?userId=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.Svc.ListOrders(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders retrieved successfully", nil)
}

// UpdateStatus PUT /orders/:orderId
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	order, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, order, "order status updated successfully", nil)
}

// DeleteOrder DELETE /orders/:orderId
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.Svc.DeleteOrder(c.Request.Context(), c.Param("orderId")); err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "order cancelled or deleted successfully", nil)
}
