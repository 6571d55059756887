package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/pkg/response"
	"github.com/oksasatya/go-commerce-api/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,rating"`
	Comment string `json:"comment"`
}

// Create POST /reviews/:productId
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	review, err := h.Svc.Create(c.Request.Context(), c.Param("productId"), req.Rating, req.Comment)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, review, "review submitted successfully", nil)
}

// ListByProduct GET /reviews/:productId
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, err := h.Svc.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, reviews, "reviews retrieved successfully", nil)
}

// Delete DELETE /reviews/:reviewId
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("reviewId")); err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "review deleted successfully", nil)
}
