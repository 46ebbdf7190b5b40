package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkumar84/Insurance-Dashboard/pkg/logger"
)

const (
	RequestIDHeader  = "X-Request-ID"
	requestIDCtxKey  = "request_id"
	maxRequestIDSize = 128
)

// RequestID assigns each request an id, echoing a caller-supplied
// X-Request-ID when it is reasonable, and stores it together with the client
// address in the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDSize {
			requestID = uuid.NewString()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDCtxKey, requestID)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		ctx = context.WithValue(ctx, logger.ClientIPKey, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID gets the request ID from gin context
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDCtxKey)
}
