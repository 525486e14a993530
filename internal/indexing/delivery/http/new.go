package http

import (
	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - internal indexing HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      indexing.UseCase
	discord discord.IDiscord
}

// New creates a new HTTP handler
func New(l log.Logger, uc indexing.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
