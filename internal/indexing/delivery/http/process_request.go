package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processIndexRequest(c *gin.Context) (indexReq, error) {
	var req indexReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "indexing.delivery.http.processIndexRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "indexing.delivery.http.processIndexRequest: validate failed: %v", err)
		return req, err
	}

	return req, nil
}
