package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/pkg/response"
	"github.com/oksasatya/go-commerce-api/pkg/validation"
)

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type createCartRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type cartQuery struct {
	UserID string `form:"userId" binding:"required"`
	ID     string `form:"id" binding:"required"`
}

type addItemRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ID        string `json:"id" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,quantity"`
}

// CreateCart POST /cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req createCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cart, err := h.Svc.CreateCart(c.Request.Context(), req.UserID)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cart, "cart created successfully", nil)
}

// GetCart GET /cart?userId=&id=
func (h *CartHandler) GetCart(c *gin.Context) {
	var q cartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cart, err := h.Svc.GetCart(c.Request.Context(), q.ID)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cart, "cart retrieved successfully", nil)
}

// AddItem POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	item, err := h.Svc.AddItem(c.Request.Context(), req.ID, req.ProductID, req.Quantity)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, item, "item added to cart", nil)
}

// UpdateItem PUT /cart/items/:itemId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	item, err := h.Svc.UpdateItem(c.Request.Context(), c.Param("itemId"), req.Quantity)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, item, "cart item updated successfully", nil)
}

// RemoveItem DELETE /cart/items/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.Svc.RemoveItem(c.Request.Context(), c.Param("itemId")); err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "item removed from cart", nil)
}

// ClearCart DELETE /cart?userId=&id=
func (h *CartHandler) ClearCart(c *gin.Context) {
	var q cartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ClearCart(c.Request.Context(), q.ID); err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "cart cleared", nil)
}
