package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
)

// CartModule wires cart routes.
type CartModule struct {
	Handler *handlers.CartHandler
}

func NewCartModule(h *handlers.CartHandler) *CartModule {
	return &CartModule{Handler: h}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	rg.POST("/cart", m.Handler.CreateCart)
	rg.GET("/cart", m.Handler.GetCart)
	rg.DELETE("/cart", m.Handler.ClearCart)
	rg.POST("/cart/items", m.Handler.AddItem)
	rg.PUT("/cart/items/:itemId", m.Handler.UpdateItem)
	rg.DELETE("/cart/items/:itemId", m.Handler.RemoveItem)
}
