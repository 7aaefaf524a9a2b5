package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/internal/application"
	"taskboard/internal/mapper"
	"taskboard/pkg/response"
	"taskboard/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var dto mapper.TaskCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.Svc.Mapper.ToDTO(t), "task created", nil)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.Svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.Svc.Mapper.ToDTO(t), "task", nil)
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]mapper.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, h.Svc.Mapper.ToDTO(t))
	}
	setTotalCount(c, len(out))
	response.Success(c, http.StatusOK, out, "tasks", nil)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto mapper.TaskUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(id, dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.Svc.Mapper.ToDTO(t), "task updated", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
