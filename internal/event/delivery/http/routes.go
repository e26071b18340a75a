package http

import (
	"github.com/gin-gonic/gin"

	"webhook-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require the internal key by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.InternalAuth(), h.List)
		events.GET("/stats", mw.InternalAuth(), h.Stats)
		events.GET("/:id", mw.InternalAuth(), h.Detail)
		events.POST("/:id/replay", mw.InternalAuth(), h.Replay)
	}
}
