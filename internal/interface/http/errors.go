// Package handlers contains the gin HTTP handlers. They bind payloads, call
// the application services, and translate domain errors into status codes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
	"taskboard/pkg/sentinel"
)

// writeError maps a domain error onto the HTTP surface:
// validation 400, bad credentials 401, ownership 403, missing rows and dangling
// references 404, duplicates and blocked deletes 409.
func writeError(c *gin.Context, err error) {
	var verr *sentinel.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Fail(c, http.StatusBadRequest, "validation failed", verr.Fields)
	case errors.Is(err, sentinel.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, sentinel.ErrForbidden):
		response.Fail(c, http.StatusForbidden, "not allowed", nil)
	case errors.Is(err, sentinel.ErrReferenceNotFound):
		response.Fail(c, http.StatusNotFound, "referenced resource not found", err.Error())
	case errors.Is(err, sentinel.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "resource not found", nil)
	case errors.Is(err, sentinel.ErrDuplicate):
		response.Fail(c, http.StatusConflict, "resource already exists", nil)
	case errors.Is(err, sentinel.ErrResourceInUse):
		response.Fail(c, http.StatusConflict, "resource is still referenced", err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}
