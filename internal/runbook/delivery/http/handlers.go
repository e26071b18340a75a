package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webhook-ops/pkg/response"
)

// List godoc
// @Summary     List runbooks
// @Description Returns runbooks with optional source/active filters.
// @Tags        Runbooks
// @Produce     json
// @Param       source      query string false "Filter by webhook source"
// @Param       active_only query bool   false "Only active runbooks"
// @Param       limit       query int    false "Page size (default: 50, max: 200)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/runbooks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	runbooks, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(runbooks))
}

// Create godoc
// @Summary     Create a runbook
// @Description Creates an ordered list of remediation steps for a webhook source.
// @Tags        Runbooks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Runbook fields"
// @Success     200 {object} runbookResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/runbooks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRunbookResp(created))
}

// Detail godoc
// @Summary     Get runbook detail
// @Tags        Runbooks
// @Produce     json
// @Param       id path string true "Runbook ID"
// @Success     200 {object} runbookResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/runbooks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	rb, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRunbookResp(rb))
}

// Update godoc
// @Summary     Update a runbook
// @Description Partial update. Omitted fields are left unchanged.
// @Tags        Runbooks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Runbook ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} runbookResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/runbooks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, req.toInput(id))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRunbookResp(updated))
}

// Delete godoc
// @Summary     Delete a runbook
// @Tags        Runbooks
// @Produce     json
// @Param       id path string true "Runbook ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/runbooks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}
