package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"webhook-ops/internal/model"
	pkgErrors "webhook-ops/pkg/errors"
	"webhook-ops/pkg/response"
)

type recordResp struct {
	EventID   string    `json:"event_id"`
	SeenAt    time.Time `json:"seen_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type listResp struct {
	Records []recordResp `json:"records"`
	Count   int          `json:"count"`
}

func newListResp(records []model.IdempotencyRecord) listResp {
	out := make([]recordResp, len(records))
	for i, r := range records {
		out[i] = recordResp{EventID: r.EventID, SeenAt: r.SeenAt, ExpiresAt: r.ExpiresAt}
	}
	return listResp{Records: out, Count: len(out)}
}

// List godoc
// @Summary     List idempotency records
// @Description Returns tracked event IDs with their expiry.
// @Tags        Webhooks
// @Produce     json
// @Param       limit query int false "Max records (default: 100, max: 1000)"
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Store Unavailable"
// @Router      /api/v1/webhooks/idempotency [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	records, err := h.store.List(ctx, limit)
	if err != nil {
		h.l.Errorf(ctx, "store.List: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(503, "idempotency store unavailable"), nil)
		return
	}

	response.OK(c, newListResp(records))
}

// Cleanup godoc
// @Summary     Purge expired idempotency records
// @Tags        Webhooks
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp "Store Unavailable"
// @Router      /api/v1/webhooks/idempotency/cleanup [POST]
func (h *handler) Cleanup(c *gin.Context) {
	ctx := c.Request.Context()

	removed, err := h.store.CleanupExpired(ctx)
	if err != nil {
		h.l.Errorf(ctx, "store.CleanupExpired: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(503, "idempotency store unavailable"), nil)
		return
	}

	response.OK(c, gin.H{"removed": removed})
}
