package http

import (
	"tweet-insights-srv/internal/chat"
	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - chat HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      chat.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc chat.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
