package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	indexingHTTP "tweet-insights-srv/internal/indexing/delivery/http"
	indexingUsecase "tweet-insights-srv/internal/indexing/usecase"
	"tweet-insights-srv/internal/middleware"
)

// setupIndexingDomain exposes POST /internal/index so a batch can be re-indexed without replaying Kafka.
func (srv *HTTPServer) setupIndexingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	if err := srv.pointUC.EnsureCollections(ctx); err != nil {
		return fmt.Errorf("failed to ensure collections: %w", err)
	}

	uc := indexingUsecase.New(
		srv.l,
		srv.pointUC,
		srv.embeddingUC,
		srv.minioClient,
		srv.geminiClient,
		indexingUsecase.Config{Concurrency: srv.config.Indexing.Concurrency},
	)

	handler := indexingHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Indexing domain registered")
	return nil
}
