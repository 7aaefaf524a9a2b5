package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/application"
	"taskboard/internal/container"
	handlers "taskboard/internal/interface/http"
	"taskboard/internal/interface/middleware"
	"taskboard/pkg/helpers"
)

// AuthModule wires the session lifecycle routes.
// Public: POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET /api/welcome
type AuthModule struct {
	Handler  *handlers.AuthHandler
	JWT      *helpers.JWTManager
	Sessions application.SessionStore
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, sessions application.SessionStore) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Sessions: sessions}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Sessions))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/welcome", m.Handler.Welcome)
	}
}
