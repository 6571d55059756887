package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/pkg/response"
	"github.com/oksasatya/go-commerce-api/pkg/validation"
)

type ShippingHandler struct {
	Svc    *application.ShippingService
	Logger *logrus.Logger
}

func NewShippingHandler(svc *application.ShippingService, logger *logrus.Logger) *ShippingHandler {
	return &ShippingHandler{Svc: svc, Logger: logger}
}

// ListMethods GET /shipping/methods
func (h *ShippingHandler) ListMethods(c *gin.Context) {
	methods, err := h.Svc.ListMethods(c.Request.Context())
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, methods, "shipping methods retrieved successfully", nil)
}

type estimateRequest struct {
	Destination string            `json:"destination" binding:"required"`
	Weight      float64           `json:"weight" binding:"gte=0"`
	Dimensions  entity.Dimensions `json:"dimensions"`
}

// Estimate POST /shipping/estimate
func (h *ShippingHandler) Estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cost, err := h.Svc.Estimate(c.Request.Context(), application.EstimateInput{
		Destination: req.Destination,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"estimatedCost": cost}, "shipping cost estimated successfully", nil)
}
