package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-commerce-api/internal/container"
	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
	"github.com/oksasatya/go-commerce-api/internal/interface/middleware"
)

// PaymentModule wires payment and refund routes. Refunds get a tighter per-IP
// budget than reads.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
}

func NewPaymentModule(h *handlers.PaymentHandler) *PaymentModule {
	return &PaymentModule{Handler: h}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	refundLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/payments", m.Handler.CreatePayment)
	rg.GET("/payments/:paymentId", m.Handler.GetPayment)
	rg.POST("/payments/refund", refundLimiter, m.Handler.ProcessRefund)
}
