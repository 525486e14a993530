package http

import (
	"tweet-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Index - Handler for POST /internal/index
// @Summary Index one chunk batch from MinIO
// @Description Internal API for re-indexing a batch outside the Kafka flow
// @Tags Indexing (Internal)
// @Accept json
// @Produce json
// @Param X-Service-Key header string true "serviceName:key"
// @Param body body indexReq true "Index request"
// @Success 200 {object} indexResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /internal/index [post]
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processIndexRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase (service scope already in context)
	output, err := h.uc.Index(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.Index: usecase Index failed for %s/%s (tweets=%d failed=%d): %v",
			req.Bucket, req.ObjectKey, output.Tweets, output.Failed, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newIndexResp(req, output))
}
