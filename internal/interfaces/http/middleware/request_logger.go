package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/mfo-shield/pkg/logger"
)

// RequestLogger emits one structured log line per served request. Server
// faults log at error level, client rejections at warn.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Int64("latency_ms", latency.Milliseconds()),
			logger.String("client_ip", c.ClientIP()),
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.Error(ctx, "Request failed", nil, fields...)
		case status >= 400:
			log.Warn(ctx, "Request rejected", fields...)
		default:
			log.Info(ctx, "Request processed", fields...)
		}
	}
}
