package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"tweet-insights-srv/internal/middleware"
	searchHTTP "tweet-insights-srv/internal/search/delivery/http"
	searchRedis "tweet-insights-srv/internal/search/repository/redis"
	searchUsecase "tweet-insights-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := searchRedis.New(srv.redisClient, srv.l)

	uc := searchUsecase.New(srv.pointUC, srv.embeddingUC, cacheRepo, srv.l, searchUsecase.Config{
		Limit:    srv.config.Search.SuggestLimit,
		CacheTTL: time.Duration(srv.config.Search.SuggestCacheTTL) * time.Second,
	})

	handler := searchHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
