package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// StorageDeadline bounds every request context. Storage calls made with the
// request context fail with a deadline error once it expires, which the
// application layer reports as a storage timeout.
func StorageDeadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
