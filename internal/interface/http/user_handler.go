package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/internal/application"
	"taskboard/internal/interface/middleware"
	"taskboard/internal/mapper"
	"taskboard/pkg/response"
	"taskboard/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

func (h *UserHandler) Create(c *gin.Context) {
	var dto mapper.UserCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mapper.UserToDTO(u), "user created", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapper.UserToDTO(u), "user", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]mapper.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, mapper.UserToDTO(u))
	}
	setTotalCount(c, len(out))
	response.Success(c, http.StatusOK, out, "users", nil)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dto mapper.UserUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.GetString(middleware.CtxActorEmailKey), id, dto)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mapper.UserToDTO(u), "user updated", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.GetString(middleware.CtxActorEmailKey), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
