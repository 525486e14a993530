package http

import (
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRunsRequest(c *gin.Context) (listRunsReq, model.Scope, error) {
	var req listRunsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, errInvalidQuery
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
