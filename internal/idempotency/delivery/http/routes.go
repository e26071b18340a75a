package http

import (
	"github.com/gin-gonic/gin"

	"webhook-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	idem := rg.Group("/webhooks/idempotency")
	{
		idem.GET("", mw.InternalAuth(), h.List)
		idem.POST("/cleanup", mw.InternalAuth(), h.Cleanup)
	}
}
