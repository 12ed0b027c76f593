// Package middleware provides gin middleware shared by every route.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is read from the request and echoed on the response.
	HeaderRequestID = "X-Request-ID"

	// ContextRequestID is the gin context key holding the request ID.
	ContextRequestID = "requestID"

	maxRequestIDLength = 128
)

// RequestID assigns every request an ID, reusing the caller's X-Request-ID when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger logs one structured line per request after it is handled.
// Server errors are logged at error level, client errors at warn.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
			"request_id", c.GetString(ContextRequestID),
		}

		switch {
		case status >= 500:
			slog.ErrorContext(c.Request.Context(), "request failed", attrs...)
		case status >= 400:
			slog.WarnContext(c.Request.Context(), "request rejected", attrs...)
		default:
			slog.InfoContext(c.Request.Context(), "request handled", attrs...)
		}
	}
}
