package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	dashboardHTTP "tweet-insights-srv/internal/dashboard/delivery/http"
	dashboardRedis "tweet-insights-srv/internal/dashboard/repository/redis"
	dashboardUsecase "tweet-insights-srv/internal/dashboard/usecase"
	"tweet-insights-srv/internal/middleware"
)

func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := dashboardRedis.New(srv.redisClient, srv.l)

	cfg := srv.config.Dashboard
	uc := dashboardUsecase.New(srv.l, srv.pointUC, srv.embeddingUC, cacheRepo, dashboardUsecase.Config{
		RelevanceThreshold: float32(cfg.RelevanceThreshold),
		CacheTTL:           time.Duration(cfg.CacheTTL) * time.Second,
		AggregateLimit:     cfg.AggregateLimit,
		RankedLimit:        cfg.RankedLimit,
		PopularLimit:       cfg.PopularLimit,
		DefaultRangeDays:   cfg.DefaultRangeDays,
	})

	handler := dashboardHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}
