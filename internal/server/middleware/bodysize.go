package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/todo-api/internal/util"
)

const defaultMaxBodySize = 2 * 1024 * 1024 // 2MB

// BodySizeLimit returns middleware that restricts the request body to the
// given size string (e.g. "2MB", "512KB").
func BodySizeLimit(maxSize string) gin.HandlerFunc {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, size)
		c.Next()
	}
}
