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

type TaskStatusHandler struct {
	Svc    *application.TaskStatusService
	Logger *logrus.Logger
}

func NewTaskStatusHandler(svc *application.TaskStatusService, logger *logrus.Logger) *TaskStatusHandler {
	return &TaskStatusHandler{Svc: svc, Logger: logger}
}

func (h *TaskStatusHandler) Create(c *gin.Context) {
	var dto mapper.TaskStatusCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	st, err := h.Svc.Create(dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mapper.StatusToDTO(st), "task status created", nil)
}

func (h *TaskStatusHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.Svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapper.StatusToDTO(st), "task status", nil)
}

func (h *TaskStatusHandler) List(c *gin.Context) {
	statuses, err := h.Svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]mapper.TaskStatusDTO, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, mapper.StatusToDTO(st))
	}
	setTotalCount(c, len(out))
	response.Success(c, http.StatusOK, out, "task statuses", nil)
}

func (h *TaskStatusHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto mapper.TaskStatusUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	st, err := h.Svc.Update(id, dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapper.StatusToDTO(st), "task status updated", nil)
}

func (h *TaskStatusHandler) Delete(c *gin.Context) {
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
