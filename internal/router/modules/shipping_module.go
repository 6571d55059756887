package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
)

// ShippingModule wires the method list and the cost estimate.
type ShippingModule struct {
	Handler *handlers.ShippingHandler
}

func NewShippingModule(h *handlers.ShippingHandler) *ShippingModule {
	return &ShippingModule{Handler: h}
}

func (m *ShippingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/shipping/methods", m.Handler.ListMethods)
	rg.POST("/shipping/estimate", m.Handler.Estimate)
}
