package http

import (
	"tweet-insights-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/ingestion")
	api.Use(mw.Auth())
	{
		api.GET("/runs", h.ListRuns)
	}
}
