package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the context key for the request correlation ID.
const RequestIDKey ContextKey = "request_id"

// RequestID returns a Gin middleware handler that attaches a correlation ID
// to every request. An incoming X-Request-ID is honored so IDs survive proxy
// hops.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestIDFromContext extracts the request correlation ID from the Gin
// context.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(string(RequestIDKey))
	if !exists {
		return "", false
	}
	idStr, ok := requestID.(string)
	return idStr, ok
}
