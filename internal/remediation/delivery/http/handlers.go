package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webhook-ops/pkg/response"
)

// AutoProcess godoc
// @Summary     Run auto-remediation for an alert
// @Description Executes the remediation plan for the alert. Individual action failures are recorded, not fatal.
// @Tags        Alerts
// @Produce     json
// @Param       id path string true "Alert ID"
// @Success     200 {object} autoProcessResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/alerts/{id}/auto-process [POST]
func (h *handler) AutoProcess(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	out, err := h.uc.HandleAlert(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleAlert: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAutoProcessResp(out))
}
