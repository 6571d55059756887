package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
)

// ProductModule wires product CRUD plus the Elasticsearch-backed search and
// the GCS image upload.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.POST("/products", m.Handler.Create)
	rg.GET("/products", m.Handler.List)
	// static route before the :productId wildcard
	rg.GET("/products/search", m.Handler.Search)
	rg.GET("/products/:productId", m.Handler.Get)
	rg.PUT("/products/:productId", m.Handler.Update)
	rg.DELETE("/products/:productId", m.Handler.Delete)
	rg.POST("/products/:productId/image", m.Handler.UploadImage)
}
