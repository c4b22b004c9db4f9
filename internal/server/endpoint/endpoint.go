// Package endpoint provides the standard operational endpoints: /health,
// /info, and /metrics.
package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillsenselab/todo-api/internal/version"
)

// startTime records when the process started for uptime calculation.
var startTime = time.Now()

// Health returns a handler reporting service liveness.
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Info returns a handler reporting service version and build information.
func Info(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := version.Get()
		c.JSON(http.StatusOK, gin.H{
			"service":    serviceName,
			"version":    v.Version,
			"git_commit": v.GitCommit,
			"build_time": v.BuildTime,
			"go_version": v.GoVersion,
			"uptime":     time.Since(startTime).String(),
		})
	}
}

// Metrics returns the prometheus scrape handler.
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
