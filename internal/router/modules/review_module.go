package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
)

// ReviewModule wires product review routes.
type ReviewModule struct {
	Handler *handlers.ReviewHandler
}

func NewReviewModule(h *handlers.ReviewHandler) *ReviewModule {
	return &ReviewModule{Handler: h}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.POST("/reviews/:productId", m.Handler.Create)
	rg.GET("/reviews/:productId", m.Handler.ListByProduct)
	rg.DELETE("/reviews/:reviewId", m.Handler.Delete)
}
