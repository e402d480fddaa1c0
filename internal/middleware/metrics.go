package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"roadmap-dashboard-api/internal/metrics"
)

// Metrics records request count and latency per route pattern; probe and scrape paths are skipped
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		m.RecordHTTPRequest(
			c.Request.Method,
			c.FullPath(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
