package http

import (
	"tweet-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListRuns - Ingestion run ledger, most recent first
// @Summary List ingestion runs
// @Tags Ingestion
// @Produce json
// @Security Bearer
// @Param page query int false "Page (1-indexed)"
// @Param limit query int false "Items per page (max 100)"
// @Success 200 {object} listRunsResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/ingestion/runs [get]
func (h *handler) ListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processListRunsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "ingestion.delivery.http.ListRuns: processListRunsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.ListRuns(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.ListRuns: usecase ListRuns failed for %s: %v", sc.Username, err)
		response.Error(c, err, h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newListRunsResp(output))
}
