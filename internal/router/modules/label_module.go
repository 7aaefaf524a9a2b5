package modules

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/application"
	handlers "taskboard/internal/interface/http"
	"taskboard/internal/interface/middleware"
	"taskboard/pkg/helpers"
)

// LabelModule wires the label routes, all protected.
type LabelModule struct {
	Handler  *handlers.LabelHandler
	JWT      *helpers.JWTManager
	Sessions application.SessionStore
}

func NewLabelModule(h *handlers.LabelHandler, jwt *helpers.JWTManager, sessions application.SessionStore) *LabelModule {
	return &LabelModule{Handler: h, JWT: jwt, Sessions: sessions}
}

func (m *LabelModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/labels")
	auth.Use(middleware.Auth(m.JWT, m.Sessions))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.PATCH("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
