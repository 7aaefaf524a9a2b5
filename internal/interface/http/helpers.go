package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// setTotalCount exposes the collection size the way list consumers expect.
func setTotalCount(c *gin.Context, n int) {
	c.Header("X-Total-Count", strconv.Itoa(n))
}
