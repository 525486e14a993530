package consumer

import (
	"context"
	"fmt"

	embeddingRedis "tweet-insights-srv/internal/embedding/repository/redis"
	embeddingUsecase "tweet-insights-srv/internal/embedding/usecase"
	indexingConsumer "tweet-insights-srv/internal/indexing/delivery/kafka/consumer"
	indexingUsecase "tweet-insights-srv/internal/indexing/usecase"
	pointQdrant "tweet-insights-srv/internal/point/repository/qdrant"
	pointUsecase "tweet-insights-srv/internal/point/usecase"
	"tweet-insights-srv/pkg/voyage"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	indexingConsumer indexingConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Core domains
	pointUC := pointUsecase.New(pointQdrant.New(srv.qdrantClient, srv.l), srv.l, voyage.Dimension)
	if err := pointUC.EnsureCollections(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure collections: %w", err)
	}
	embeddingUC := embeddingUsecase.New(
		embeddingRedis.New(srv.redisClient, srv.l),
		srv.voyageClient,
		srv.voyageConfig.Model,
		srv.l,
	)

	// Indexing domain
	indexingUC := indexingUsecase.New(
		srv.l,
		pointUC,
		embeddingUC,
		srv.minioClient,
		srv.geminiClient,
		indexingUsecase.Config{Concurrency: srv.indexingConfig.Concurrency},
	)
	indexingCons, err := indexingConsumer.New(indexingConsumer.Config{
		Logger:  srv.l,
		Topic:   srv.kafkaConfig.Topic,
		Group:   srv.consumerGroup,
		UseCase: indexingUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create indexing consumer: %w", err)
	}

	srv.l.Infof(ctx, "Indexing domain initialized")

	return &domainConsumers{
		indexingConsumer: indexingCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.indexingConsumer.ConsumeChunksReady(ctx); err != nil {
		return fmt.Errorf("failed to start indexing consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.indexingConsumer != nil {
		if err := consumers.indexingConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing indexing consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
