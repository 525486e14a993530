package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tweet-insights-srv/config"
	"tweet-insights-srv/config/kafka"
	"tweet-insights-srv/config/minio"
	"tweet-insights-srv/config/qdrant"
	"tweet-insights-srv/config/redis"
	"tweet-insights-srv/internal/consumer"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/gemini"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/metrics"
	"tweet-insights-srv/pkg/voyage"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tweet Indexing Consumer...")

	// Metrics
	metrics.MustRegister(prometheus.DefaultRegisterer)
	go func() {
		if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
			logger.Warnf(ctx, "Metrics listener stopped: %v", err)
		}
	}()

	// Kafka consumer group
	consumerGroup, err := kafka.ConnectConsumer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka consumer group: %v", err)
		return
	}
	logger.Infof(ctx, "Kafka consumer group %s initialized", cfg.Kafka.GroupID)

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Info(ctx, "Redis client initialized")

	// Qdrant
	qdrantClient, err := qdrant.Connect(cfg.Qdrant)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Qdrant: %v", err)
		return
	}
	defer qdrantClient.Close()
	logger.Info(ctx, "Qdrant client initialized")

	// MinIO
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	logger.Info(ctx, "MinIO client initialized")

	// Voyage
	voyageClient := voyage.NewVoyage(voyage.VoyageConfig{
		APIKey: cfg.Voyage.APIKey,
		Model:  cfg.Voyage.Model,
	})
	logger.Info(ctx, "Voyage client initialized")

	// Gemini
	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		return
	}
	logger.Info(ctx, "Gemini client initialized")

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(discord.Config{WebhookURL: cfg.Discord.WebhookURL})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:         logger,
		KafkaConfig:    cfg.Kafka,
		VoyageConfig:   cfg.Voyage,
		IndexingConfig: cfg.Indexing,
		RedisClient:    redisClient,
		QdrantClient:   qdrantClient,
		MinIOClient:    minioClient,
		ConsumerGroup:  consumerGroup,
		VoyageClient:   voyageClient,
		GeminiClient:   geminiClient,
		Discord:        discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		_ = consumerGroup.Close()
		return
	}

	// Run consumer server; it closes the consumer group on shutdown
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(context.Background(), "Consumer server stopped gracefully")
}
