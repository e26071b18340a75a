package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webhook-ops/internal/model"
	"webhook-ops/pkg/response"
)

// List godoc
// @Summary     List alerts
// @Description Returns alerts newest-first with optional status/category/severity filters.
// @Tags        Alerts
// @Produce     json
// @Param       status   query string false "active | dismissed"
// @Param       category query string false "webhook | payment | system | user | security"
// @Param       severity query string false "critical | warning | info"
// @Param       limit    query int    false "Page size (default: 50, max: 200)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/alerts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	alerts, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(alerts))
}

// Create godoc
// @Summary     Raise an alert
// @Description Creates an alert. auto_dismiss_minutes > 0 schedules auto-dismissal.
// @Tags        Alerts
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Alert fields"
// @Success     200 {object} alertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/alerts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAlertResp(created))
}

// Detail godoc
// @Summary     Get alert detail
// @Description Returns one alert with its remediation action log.
// @Tags        Alerts
// @Produce     json
// @Param       id path string true "Alert ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/alerts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Dismiss godoc
// @Summary     Dismiss an alert
// @Description Transitions an alert to dismissed. Idempotent for already-dismissed alerts.
// @Tags        Alerts
// @Produce     json
// @Param       id path string true "Alert ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/alerts/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Dismiss(ctx, scopeFrom(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Dismiss: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"dismissed": true})
}

// Sweep godoc
// @Summary     Run the expiry sweep
// @Description Dismisses every active alert whose auto_dismiss_at has passed.
// @Tags        Alerts
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/alerts/sweep [POST]
func (h *handler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.uc.SweepExpired(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.SweepExpired: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"dismissed": count})
}

// scopeFrom derives the acting identity from the request. The admin
// surface is key-authenticated, so the caller name travels in a header
// and defaults to "operator".
func scopeFrom(c *gin.Context) model.Scope {
	actor := c.GetHeader("X-Actor")
	if actor == "" {
		actor = "operator"
	}
	return model.Scope{UserID: actor}
}
