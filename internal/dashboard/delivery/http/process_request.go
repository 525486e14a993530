package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGetDashboardRequest(c *gin.Context) (getDashboardReq, error) {
	var req getDashboardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	return req, nil
}
