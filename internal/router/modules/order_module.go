package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
)

// OrderModule wires order routes.
type OrderModule struct {
	Handler *handlers.OrderHandler
}

func NewOrderModule(h *handlers.OrderHandler) *OrderModule {
	return &OrderModule{Handler: h}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	rg.POST("/orders", m.Handler.CreateOrder)
	rg.GET("/orders", m.Handler.ListOrders)
	rg.GET("/orders/:orderId", m.Handler.GetOrder)
	rg.PUT("/orders/:orderId", m.Handler.UpdateStatus)
	rg.DELETE("/orders/:orderId", m.Handler.DeleteOrder)
}
