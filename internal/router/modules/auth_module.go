package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-commerce-api/internal/application"
	"github.com/oksasatya/go-commerce-api/internal/container"
	handlers "github.com/oksasatya/go-commerce-api/internal/interface/http"
	"github.com/oksasatya/go-commerce-api/internal/interface/middleware"
)

// AuthModule wires account and session routes.
// Public: POST /auth/register, POST /auth/login
// Protected: POST /auth/logout, /auth/users/:userId CRUD, reset-password
type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   *application.UserService
}

func NewAuthModule(h *handlers.AuthHandler, users *application.UserService) *AuthModule {
	return &AuthModule{Handler: h, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/auth/users/:userId", m.Handler.GetUser)
		auth.PUT("/auth/users/:userId", m.Handler.UpdateUser)
		auth.DELETE("/auth/users/:userId", m.Handler.DeleteUser)
		auth.PUT("/auth/reset-password/:userId", m.Handler.ResetPassword)
	}
}
