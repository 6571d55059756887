package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/pkg/helpers"
	"github.com/oksasatya/go-commerce-api/pkg/response"
	"github.com/oksasatya/go-commerce-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.UserService
	Cookie *helpers.Manager
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, cookie *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookie: cookie, Logger: logger}
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	SecretKey string `json:"secretKey" binding:"required"`
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		SecretKey: req.SecretKey,
	})
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, user, "user registered successfully", nil)
}

type loginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	SecretKey string `json:"secretKey" binding:"required"`
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	token, exp, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		SecretKey: req.SecretKey,
	})
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	h.Cookie.SetToken(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{
		"accessToken": token,
		"expiresAt":   exp,
	}, "login successful", nil)
}

// Logout POST /auth/logout. The token is already stateless; logout clears the
// cookie and tells the client to discard its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookie.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logout successful", nil)
}

// GetUser GET /auth/users/:userId
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.Svc.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, user, "user found successfully", nil)
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateUser PUT /auth/users/:userId
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Svc.UpdateUser(c.Request.Context(), c.Param("userId"), application.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, user, "user updated successfully", nil)
}

// DeleteUser DELETE /auth/users/:userId
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	h.Cookie.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "user deleted successfully", nil)
}

type resetPasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

// ResetPassword PUT /auth/reset-password/:userId
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetPassword(c.Request.Context(), c.Param("userId"), req.OldPassword, req.NewPassword); err != nil {
		response.Failure(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password updated successfully", nil)
}
