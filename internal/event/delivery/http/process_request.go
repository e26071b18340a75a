package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processReplayReq binds the optional replay body + URI param.
// An empty body is fine: the original target is used.
func (h *handler) processReplayReq(c *gin.Context) (replayReq, error) {
	var req replayReq
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			return req, err
		}
	}
	req.EventID = c.Param("id")
	return req, nil
}
