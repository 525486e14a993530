package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tweet-insights-srv/config"
	configMinIO "tweet-insights-srv/config/minio"
	configPostgre "tweet-insights-srv/config/postgre"
	configQdrant "tweet-insights-srv/config/qdrant"
	configRedis "tweet-insights-srv/config/redis"
	"tweet-insights-srv/internal/httpserver"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/gemini"
	pkgJWT "tweet-insights-srv/pkg/jwt"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/metrics"
	"tweet-insights-srv/pkg/voyage"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	metrics.MustRegister(prometheus.DefaultRegisterer)

	// 3. Register graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Qdrant
	qdrantClient, err := configQdrant.Connect(cfg.Qdrant)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Qdrant: %v", err)
		return
	}
	defer qdrantClient.Close()
	logger.Infof(ctx, "Qdrant connected successfully to %s:%d", cfg.Qdrant.Host, cfg.Qdrant.Port)

	// 7. Initialize MinIO
	minioClient, err := configMinIO.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 8. Initialize AI clients
	voyageClient := voyage.NewVoyage(voyage.VoyageConfig{
		APIKey: cfg.Voyage.APIKey,
		Model:  cfg.Voyage.Model,
	})
	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		return
	}

	// 9. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	// 10. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(discord.Config{WebhookURL: cfg.Discord.WebhookURL})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Infof(ctx, "Discord webhook initialized successfully")
		}
	}

	// 11. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Database Configuration
		PostgresDB:   postgresDB,
		RedisClient:  redisClient,
		QdrantClient: qdrantClient,
		MinIOClient:  minioClient,

		// AI/ML clients
		VoyageClient: voyageClient,
		GeminiClient: geminiClient,

		// Authentication & Security Configuration
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
