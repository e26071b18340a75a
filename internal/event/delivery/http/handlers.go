package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webhook-ops/pkg/response"
)

// List godoc
// @Summary     List recorded events
// @Description Returns recorded inbound events, newest first.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       source   query string false "Filter by source"
// @Param       verified query bool   false "Filter by verification result"
// @Param       limit    query int    false "Page size (default: 100, max: 500)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	events, err := h.uc.GetRecent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetRecent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(events))
}

// Stats godoc
// @Summary     Event statistics
// @Description Aggregate counts over recorded events. Eventually consistent.
// @Tags        Events
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.GetStats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, stats)
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns a single recorded event by ID.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	ev, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEventResp(ev))
}

// Replay godoc
// @Summary     Replay a recorded event
// @Description Re-dispatches the stored payload byte-for-byte, re-signed with the current secret.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Event ID"
// @Param       body body replayReq false "Optional target override"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "No replay target"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Dispatch failed"
// @Router      /api/v1/events/{id}/replay [POST]
func (h *handler) Replay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Replay(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Replay: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{
			"delivery_attempts": output.DeliveryAttempts,
			"new_event_id":      output.NewEventID,
		})
		return
	}

	response.OK(c, output)
}
