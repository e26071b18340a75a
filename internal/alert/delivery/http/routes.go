package http

import (
	"github.com/gin-gonic/gin"

	"webhook-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require the internal key by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	alerts := rg.Group("/alerts")
	{
		alerts.GET("", mw.InternalAuth(), h.List)
		alerts.POST("", mw.InternalAuth(), h.Create)
		alerts.POST("/sweep", mw.InternalAuth(), h.Sweep)
		alerts.GET("/:id", mw.InternalAuth(), h.Detail)
		alerts.POST("/:id/dismiss", mw.InternalAuth(), h.Dismiss)
	}
}
