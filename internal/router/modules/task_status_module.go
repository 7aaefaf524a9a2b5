package modules

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/application"
	handlers "taskboard/internal/interface/http"
	"taskboard/internal/interface/middleware"
	"taskboard/pkg/helpers"
)

// TaskStatusModule wires the workflow status routes, all protected.
type TaskStatusModule struct {
	Handler  *handlers.TaskStatusHandler
	JWT      *helpers.JWTManager
	Sessions application.SessionStore
}

func NewTaskStatusModule(h *handlers.TaskStatusHandler, jwt *helpers.JWTManager, sessions application.SessionStore) *TaskStatusModule {
	return &TaskStatusModule{Handler: h, JWT: jwt, Sessions: sessions}
}

func (m *TaskStatusModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/task_statuses")
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
