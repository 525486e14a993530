package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "tweet-insights-srv/internal/chat/delivery/http"
	chatUsecase "tweet-insights-srv/internal/chat/usecase"
	"tweet-insights-srv/internal/middleware"
)

func (srv *HTTPServer) setupChatDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cfg := srv.config.Chat
	uc := chatUsecase.New(srv.l, srv.geminiClient, srv.embeddingUC, srv.pointUC, chatUsecase.Config{
		RetrieveLimit:      cfg.RetrieveLimit,
		RewriteTemperature: float32(cfg.RewriteTemperature),
		RewriteMaxTokens:   cfg.RewriteMaxTokens,
		AnswerTemperature:  float32(cfg.AnswerTemperature),
	})

	handler := chatHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
