// Package middleware provides the gin middleware chain of the HTTP surface.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/mfo-shield/pkg/errors"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// Recovery converts handler panics into the generic 500 response. The
// panic value and stack are logged server-side and never surfaced.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("panic: %v", recovered)
				log.Error(c.Request.Context(), "Recovered from handler panic", err,
					logger.String("method", c.Request.Method),
					logger.String("path", c.Request.URL.Path),
					logger.String("stack", string(debug.Stack())),
				)

				shieldErr := errors.ErrInternalServer(err)
				c.AbortWithStatusJSON(shieldErr.HTTPStatus(), errors.ToErrorResponse(shieldErr))
			}
		}()

		c.Next()
	}
}
