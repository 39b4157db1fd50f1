// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/metrics"
)

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP
// requests. Paths are labelled by route template so IDs do not explode the
// label space; static files share one label.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := routeLabel(c)

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

func routeLabel(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case path == "":
		return "unmatched"
	case strings.HasPrefix(path, StaticRoutePrefix):
		return StaticRoutePrefix
	}
	return path
}

// StaticRoutePrefix is where uploaded files are served.
const StaticRoutePrefix = "/static"
