package middleware

import (
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"time"
)

const (
	ContextRequestIDKey = "requestID"
	RequestIDHeader     = "X-Request-ID"
)

// RequestID tags every request with an id, reusing the caller's header when
// one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

func RequestLogger(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		fields := map[string]interface{}{
			"request_id": c.GetString(ContextRequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(started).Milliseconds(),
		}
		if c.Request.URL.Path == "/health" {
			logger.DebugWithFields("Request handled", fields)
			return
		}
		logger.InfoWithFields("Request handled", fields)
	}
}
