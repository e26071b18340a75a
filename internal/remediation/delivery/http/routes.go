package http

import (
	"github.com/gin-gonic/gin"

	"webhook-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/alerts/:id/auto-process", mw.InternalAuth(), h.AutoProcess)
}
