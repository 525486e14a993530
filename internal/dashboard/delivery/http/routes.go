package http

import (
	"tweet-insights-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, _ middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.GET("/dashboard", h.GetDashboard)
	}
}
