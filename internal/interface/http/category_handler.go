package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/pkg/response"
	"github.com/oksasatya/go-commerce-api/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cat, "category created successfully", nil)
}

// List GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, categories, "categories retrieved successfully", nil)
}

// Get GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category found successfully", nil)
}

// Update PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cat, "category updated successfully", nil)
}

// Delete DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "category deleted successfully", nil)
}
