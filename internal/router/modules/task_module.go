package modules

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/application"
	handlers "taskboard/internal/interface/http"
	"taskboard/internal/interface/middleware"
	"taskboard/pkg/helpers"
)

// TaskModule wires the task routes, all protected.
type TaskModule struct {
	Handler  *handlers.TaskHandler
	JWT      *helpers.JWTManager
	Sessions application.SessionStore
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager, sessions application.SessionStore) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt, Sessions: sessions}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
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
