package httpserver

import (
	"database/sql"
	"errors"

	"tweet-insights-srv/config"
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/discord"
	"tweet-insights-srv/pkg/gemini"
	pkgJWT "tweet-insights-srv/pkg/jwt"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/minio"
	"tweet-insights-srv/pkg/qdrant"
	pkgRedis "tweet-insights-srv/pkg/redis"
	"tweet-insights-srv/pkg/voyage"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Database Configuration
	postgresDB   *sql.DB
	redisClient  pkgRedis.IRedis
	qdrantClient qdrant.IQdrant
	minioClient  minio.MinIO

	// AI/ML clients
	voyageClient voyage.IVoyage
	geminiClient gemini.IGemini

	// Authentication & Security Configuration
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Core domains shared by the feature domains
	pointUC     point.UseCase
	embeddingUC embedding.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Database Configuration
	PostgresDB   *sql.DB
	RedisClient  pkgRedis.IRedis
	QdrantClient qdrant.IQdrant
	MinIOClient  minio.MinIO

	// AI/ML clients
	VoyageClient voyage.IVoyage
	GeminiClient gemini.IGemini

	// Authentication & Security Configuration
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Database Configuration
		postgresDB:   cfg.PostgresDB,
		redisClient:  cfg.RedisClient,
		qdrantClient: cfg.QdrantClient,
		minioClient:  cfg.MinIOClient,

		// AI/ML clients
		voyageClient: cfg.VoyageClient,
		geminiClient: cfg.GeminiClient,

		// Authentication & Security Configuration
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.qdrantClient == nil {
		return errors.New("qdrantClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	// AI/ML clients
	if srv.voyageClient == nil {
		return errors.New("voyageClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// Monitoring & Notification Configuration (optional)

	return nil
}
