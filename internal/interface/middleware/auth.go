package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/application"
	"taskboard/pkg/helpers"
	"taskboard/pkg/response"
)

// CtxActorEmailKey is the Gin context key holding the authenticated
// principal's email, taken from the access token's subject claim.
const CtxActorEmailKey = "actorEmail"

// Auth validates the access token from the access_token cookie or, failing
// that, an Authorization bearer header. When a session store is configured it
// also requires an active session for the principal.
func Auth(jwt *helpers.JWTManager, sessions application.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		if sessions != nil {
			ok, err := sessions.SessionExists(c.Request.Context(), claims.Email())
			if err != nil || !ok {
				resp := response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
				c.AbortWithStatusJSON(resp.Status, resp)
				return
			}
		}

		c.Set(CtxActorEmailKey, claims.Email())
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
