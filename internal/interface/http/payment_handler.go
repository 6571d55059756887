package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/pkg/response"
	"github.com/oksasatya/go-commerce-api/pkg/validation"
)

type PaymentHandler struct {
	Svc    *application.PaymentService
	Logger *logrus.Logger
}

func NewPaymentHandler(svc *application.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

type createPaymentRequest struct {
	OrderID       string  `json:"orderId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	UserID        string  `json:"userId" binding:"required"`
}

type refundRequest struct {
	PaymentID    string  `json:"paymentId" binding:"required"`
	RefundAmount float64 `json:"refundAmount" binding:"required,gt=0"`
}

// CreatePayment POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	payment, err := h.Svc.CreatePayment(c.Request.Context(), application.CreatePaymentInput{
		OrderID:       req.OrderID,
		UserID:        req.UserID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, payment, "payment processed successfully", nil)
}

// GetPayment GET /payments/:paymentId
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.Svc.GetPayment(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, payment, "payment details retrieved successfully", nil)
}

// ProcessRefund POST /payments/refund
func (h *PaymentHandler) ProcessRefund(c *gin.Context) {
	var req refundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	refund, err := h.Svc.ProcessRefund(c.Request.Context(), req.PaymentID, req.RefundAmount)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, refund, "refund processed successfully", nil)
}
