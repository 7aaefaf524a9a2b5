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

type LabelHandler struct {
	Svc    *application.LabelService
	Logger *logrus.Logger
}

func NewLabelHandler(svc *application.LabelService, logger *logrus.Logger) *LabelHandler {
	return &LabelHandler{Svc: svc, Logger: logger}
}

func (h *LabelHandler) Create(c *gin.Context) {
	var dto mapper.LabelCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Create(dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mapper.LabelToDTO(l), "label created", nil)
}

func (h *LabelHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	l, err := h.Svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapper.LabelToDTO(l), "label", nil)
}

func (h *LabelHandler) List(c *gin.Context) {
	labels, err := h.Svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]mapper.LabelDTO, 0, len(labels))
	for _, l := range labels {
		out = append(out, mapper.LabelToDTO(l))
	}
	setTotalCount(c, len(out))
	response.Success(c, http.StatusOK, out, "labels", nil)
}

func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto mapper.LabelUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Update(id, dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapper.LabelToDTO(l), "label updated", nil)
}

func (h *LabelHandler) Delete(c *gin.Context) {
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
