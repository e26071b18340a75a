package http

import (
	"github.com/gin-gonic/gin"

	"webhook-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	runbooks := rg.Group("/runbooks")
	{
		runbooks.GET("", mw.InternalAuth(), h.List)
		runbooks.POST("", mw.InternalAuth(), h.Create)
		runbooks.GET("/:id", mw.InternalAuth(), h.Detail)
		runbooks.PUT("/:id", mw.InternalAuth(), h.Update)
		runbooks.DELETE("/:id", mw.InternalAuth(), h.Delete)
	}
}
