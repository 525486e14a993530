package httpserver

import (
	"context"

	embeddingRepo "tweet-insights-srv/internal/embedding/repository/redis"
	embeddingUsecase "tweet-insights-srv/internal/embedding/usecase"
	pointRepo "tweet-insights-srv/internal/point/repository/qdrant"
	pointUsecase "tweet-insights-srv/internal/point/usecase"
	"tweet-insights-srv/pkg/voyage"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	embeddingCacheRepo := embeddingRepo.New(srv.redisClient, srv.l)

	srv.embeddingUC = embeddingUsecase.New(embeddingCacheRepo, srv.voyageClient, srv.config.Voyage.Model, srv.l)

	pointQdrantRepo := pointRepo.New(srv.qdrantClient, srv.l)

	srv.pointUC = pointUsecase.New(pointQdrantRepo, srv.l, voyage.Dimension)

	srv.l.Infof(ctx, "Core domains (Embedding, Point) initialized")
	return nil
}
