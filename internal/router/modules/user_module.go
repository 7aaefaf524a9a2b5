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

// UserModule wires account routes. Registration is public so a fresh install
// can create its first account; everything else requires a session.
type UserModule struct {
	Handler  *handlers.UserHandler
	JWT      *helpers.JWTManager
	Sessions application.SessionStore
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, sessions application.SessionStore) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, Sessions: sessions}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/users", registerLimiter, m.Handler.Create)

	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.JWT, m.Sessions))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.PATCH("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
