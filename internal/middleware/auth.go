package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"webhook-ops/pkg/response"
)

// InternalAuth guards the admin surface. Requests must carry the
// configured key in X-Internal-Key. Comparison is constant-time.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" {
			m.l.Warn(c.Request.Context(), "middleware.InternalAuth: internal key not configured, rejecting")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		key := c.GetHeader("X-Internal-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
