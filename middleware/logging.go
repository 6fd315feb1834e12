package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"steamstatus/status-bot/utils"
)

// Logger logs one line per request once it has been served.
func Logger(logger *utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("Request served",
			"remote_addr", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
