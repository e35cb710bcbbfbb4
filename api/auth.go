package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUser reads the authenticated user id from the X-User-ID header set
// by the upstream auth proxy. Session handling itself lives outside this
// service.
func currentUser(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.GetHeader("X-User-ID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid X-User-ID header"})
		return 0, false
	}
	return id, true
}
