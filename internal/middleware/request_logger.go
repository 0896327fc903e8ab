package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with method, path, status and
// latency. Health probes are noisy and skipped.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if path == "/health" || path == "/ready" || path == "/live" {
			return
		}

		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}
