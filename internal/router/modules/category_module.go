package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
)

// CategoryModule wires category CRUD routes.
type CategoryModule struct {
	Handler *handlers.CategoryHandler
}

func NewCategoryModule(h *handlers.CategoryHandler) *CategoryModule {
	return &CategoryModule{Handler: h}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.POST("/categories", m.Handler.Create)
	rg.GET("/categories", m.Handler.List)
	rg.GET("/categories/:id", m.Handler.Get)
	rg.PUT("/categories/:id", m.Handler.Update)
	rg.DELETE("/categories/:id", m.Handler.Delete)
}
