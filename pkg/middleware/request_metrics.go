package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vanesatov/HotelesApi/pkg/metrics"
)

// RequestMetrics counts every request by method, matched route and status.
// Unmatched routes are grouped under "unmatched" to keep label cardinality
// bounded.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
