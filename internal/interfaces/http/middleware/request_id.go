package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// RequestIDHeader carries the caller-supplied or generated request ID.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the request context and echoes it in
// the response header. Caller-supplied IDs are kept so clients can
// correlate retries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(constants.ContextKeyRequestID), requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
