// Package middleware holds the HTTP middleware chain: request IDs,
// structured logging, panic recovery, Prometheus metrics, CORS and a small
// in-memory rate limiter.
package middleware

import (
	"github.com/Haleralex/ftwallet/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID between client and server.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey stores the request ID in the gin context.
	RequestIDContextKey = "request_id"
)

// RequestID tags every request with an ID for log correlation. A client
// supplied X-Request-ID is kept, otherwise a fresh UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		// Propagate into the request context so context-aware log lines below
		// this layer carry the ID too.
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

// GetRequestID extracts the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDContextKey); exists {
		if strID, ok := id.(string); ok {
			return strID
		}
	}
	return ""
}
