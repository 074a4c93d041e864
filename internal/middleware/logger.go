package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// RequestLogger writes one structured line per request. Query strings are
// left out because reset and verification links carry tokens.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if user, ok := principal(c); ok {
			fields = append(fields, zap.String("user", user.Email))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Warn("Request failed", fields...)
		case status >= 400:
			log.Info("Request rejected", fields...)
		default:
			log.Info("Request handled", fields...)
		}
	}
}
