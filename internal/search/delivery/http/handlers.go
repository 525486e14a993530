package http

import (
	"tweet-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Suggest - Autocomplete tweet texts for a query
// @Summary Search suggestions
// @Description Up to five tweet texts: full-text matches first, then semantic matches
// @Tags Search
// @Produce json
// @Param q query string false "Partial query"
// @Success 200 {object} suggestResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/search/suggestions [get]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processSuggestRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Suggest: processSuggestRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	suggestions, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Suggest: usecase Suggest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newSuggestResp(suggestions))
}
