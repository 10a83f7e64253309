// Package middleware provides the gin middleware chain: recovery, tracing,
// request logging, JWT authentication, role checks and error rendering.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"patrimonio/internal/core/apperror"
	"patrimonio/pkg/logger"
)

// Recovery turns panics into a 500 response. The stack trace goes to the log,
// never to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)

				_ = c.Error(
					apperror.NewInternal(fmt.Errorf("panic: %v", err)).
						WithDetail("request_id", c.GetString("request_id")),
				)
				c.Abort()
			}
		}()
		c.Next()
	}
}
