package consumer

import (
	"context"

	"tweet-insights-srv/config"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/gemini"
	pkgKafka "tweet-insights-srv/pkg/kafka"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/minio"
	"tweet-insights-srv/pkg/qdrant"
	"tweet-insights-srv/pkg/redis"
	"tweet-insights-srv/pkg/voyage"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l              log.Logger
	kafkaConfig    config.KafkaConfig
	voyageConfig   config.VoyageConfig
	indexingConfig config.IndexingConfig

	// Infrastructure clients
	redisClient   redis.IRedis
	qdrantClient  qdrant.IQdrant
	minioClient   minio.MinIO
	consumerGroup pkgKafka.IConsumer

	// AI/ML clients
	voyageClient voyage.IVoyage
	geminiClient gemini.IGemini

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger         log.Logger
	KafkaConfig    config.KafkaConfig
	VoyageConfig   config.VoyageConfig
	IndexingConfig config.IndexingConfig

	// Infrastructure clients
	RedisClient   redis.IRedis
	QdrantClient  qdrant.IQdrant
	MinIOClient   minio.MinIO
	ConsumerGroup pkgKafka.IConsumer

	// AI/ML clients
	VoyageClient voyage.IVoyage
	GeminiClient gemini.IGemini

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		srv.reportError(ctx, "Consumer setup failed", err)
		_ = srv.consumerGroup.Close()
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	// ctx is already cancelled; log the shutdown on a fresh one
	srv.stopConsumers(context.Background(), consumers)

	srv.l.Info(context.Background(), "Consumer Server stopped gracefully")
	return nil
}

func (srv *ConsumerServer) reportError(ctx context.Context, title string, err error) {
	if srv.discord == nil {
		return
	}
	if sendErr := srv.discord.SendError(ctx, title, "tweet-insights consumer", err); sendErr != nil {
		srv.l.Warnf(ctx, "consumer.reportError: discord: %v", sendErr)
	}
}
