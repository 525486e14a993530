package http

import (
	"tweet-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard - Relevance-filtered dashboard statistics for a date range
// @Summary Get dashboard
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "YYYY-MM-DD, defaults to 7 days ago"
// @Param end_date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dashboardResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard [get]
func (h *handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processGetDashboardRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.GetDashboard: processGetDashboardRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.GetDashboard(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.GetDashboard: usecase GetDashboard failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newDashboardResp(output))
}
