package http

import (
	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - dashboard HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      dashboard.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc dashboard.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
