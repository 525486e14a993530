package http

import (
	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/internal/search"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - search HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      search.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc search.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
