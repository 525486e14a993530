package httpserver

import (
	"context"

	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Internal.ServiceKeys)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return err
	}

	r := &srv.gin.RouterGroup
	if err := srv.setupDashboardDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupSearchDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupChatDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupIngestionDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupIndexingDomain(ctx, r, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.Metrics())
	if srv.environment == "development" {
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))
}
