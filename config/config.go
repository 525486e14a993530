package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Metrics    MetricsConfig

	// Qdrant - Tweet and chunk collections
	Qdrant QdrantConfig

	// Voyage - Embedding
	Voyage VoyageConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// PostgreSQL - Ingestion run ledger
	Postgres PostgresConfig

	// Redis - Memo caches
	Redis RedisConfig

	// MinIO - Ingestion output
	MinIO MinIOConfig

	// Kafka - Ingestion to indexing events
	Kafka KafkaConfig

	// Twitter - X API recent search
	Twitter TwitterConfig

	// JWT - Ops endpoint authentication
	JWT JWTConfig

	// Internal - service-to-service authentication
	Internal InternalConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig

	// Domain settings
	Dashboard DashboardConfig
	Search    SearchConfig
	Chat      ChatConfig
	Ingestion IngestionConfig
	Indexing  IndexingConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// MetricsConfig is the scrape listener used by the consumer and ingestion processes.
// The API serves /metrics on its own port.
type MetricsConfig struct {
	Addr string
}

// QdrantConfig is the configuration for Qdrant
type QdrantConfig struct {
	Host    string
	Port    int
	APIKey  string
	UseTLS  bool
	Timeout int // in seconds
}

// VoyageConfig is the configuration for Voyage AI (embedding).
type VoyageConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig is the configuration for Google Gemini (LLM).
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// TwitterConfig is the configuration for the X API client.
type TwitterConfig struct {
	BearerToken string
	Query       string
}

// JWTConfig is used to verify operator tokens.
type JWTConfig struct {
	Issuer    string
	SecretKey string
	TTL       int // in seconds
}

// InternalConfig holds the keys accepted on /internal routes, keyed by calling service name.
type InternalConfig struct {
	ServiceKeys map[string]string
}

// DiscordConfig is the alert webhook. Alerts are disabled when WebhookURL is empty.
type DiscordConfig struct {
	WebhookURL string
}

// DashboardConfig controls the dashboard queries and memo cache.
type DashboardConfig struct {
	RelevanceThreshold float64
	CacheTTL           int // in seconds
	AggregateLimit     int
	RankedLimit        int
	PopularLimit       int
	DefaultRangeDays   int
}

// SearchConfig controls search suggestions.
type SearchConfig struct {
	SuggestLimit    int
	SuggestCacheTTL int // in seconds
}

// ChatConfig controls the RAG chat pipeline.
type ChatConfig struct {
	RetrieveLimit      int
	RewriteTemperature float64
	RewriteMaxTokens   int
	AnswerTemperature  float64
}

// IngestionConfig controls the daily ingestion job.
type IngestionConfig struct {
	Schedule     string
	Timezone     string
	MaxTweets    int
	TopN         int
	ChunkSize    int
	ChunkOverlap int
}

// IndexingConfig controls the indexing consumer.
type IndexingConfig struct {
	Concurrency int
}

// Load loads configuration using Viper. A .env file in the working directory is applied
// first when present; real environment variables win over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	// Set config file name and paths
	viper.SetConfigName("tweet-insights")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/tweet-insights/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Metrics.Addr = viper.GetString("metrics.addr")

	// Qdrant
	cfg.Qdrant.Host = viper.GetString("qdrant.host")
	cfg.Qdrant.Port = viper.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = viper.GetBool("qdrant.use_tls")
	cfg.Qdrant.Timeout = viper.GetInt("qdrant.timeout")

	// Voyage - Embedding
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")

	// Gemini - LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Twitter
	cfg.Twitter.BearerToken = viper.GetString("twitter.bearer_token")
	cfg.Twitter.Query = viper.GetString("twitter.query")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Internal
	cfg.Internal.ServiceKeys = make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		for service, key := range viper.GetStringMapString("internal.service_keys") {
			cfg.Internal.ServiceKeys[service] = key
		}
	}

	// Discord
	cfg.Discord.WebhookURL = viper.GetString("discord.webhook_url")

	// Dashboard
	cfg.Dashboard.RelevanceThreshold = viper.GetFloat64("dashboard.relevance_threshold")
	cfg.Dashboard.CacheTTL = viper.GetInt("dashboard.cache_ttl")
	cfg.Dashboard.AggregateLimit = viper.GetInt("dashboard.aggregate_limit")
	cfg.Dashboard.RankedLimit = viper.GetInt("dashboard.ranked_limit")
	cfg.Dashboard.PopularLimit = viper.GetInt("dashboard.popular_limit")
	cfg.Dashboard.DefaultRangeDays = viper.GetInt("dashboard.default_range_days")

	// Search
	cfg.Search.SuggestLimit = viper.GetInt("search.suggest_limit")
	cfg.Search.SuggestCacheTTL = viper.GetInt("search.suggest_cache_ttl")

	// Chat
	cfg.Chat.RetrieveLimit = viper.GetInt("chat.retrieve_limit")
	cfg.Chat.RewriteTemperature = viper.GetFloat64("chat.rewrite_temperature")
	cfg.Chat.RewriteMaxTokens = viper.GetInt("chat.rewrite_max_tokens")
	cfg.Chat.AnswerTemperature = viper.GetFloat64("chat.answer_temperature")

	// Ingestion
	cfg.Ingestion.Schedule = viper.GetString("ingestion.schedule")
	cfg.Ingestion.Timezone = viper.GetString("ingestion.timezone")
	cfg.Ingestion.MaxTweets = viper.GetInt("ingestion.max_tweets")
	cfg.Ingestion.TopN = viper.GetInt("ingestion.top_n")
	cfg.Ingestion.ChunkSize = viper.GetInt("ingestion.chunk_size")
	cfg.Ingestion.ChunkOverlap = viper.GetInt("ingestion.chunk_overlap")

	// Indexing
	cfg.Indexing.Concurrency = viper.GetInt("indexing.concurrency")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Metrics
	viper.SetDefault("metrics.addr", ":9102")

	// Qdrant (gRPC port)
	viper.SetDefault("qdrant.host", "localhost")
	viper.SetDefault("qdrant.port", 6334)
	viper.SetDefault("qdrant.use_tls", false)
	viper.SetDefault("qdrant.timeout", 30)

	// AI
	viper.SetDefault("voyage.model", "voyage-3")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.schema", "tweet_insights")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "cdc-tweets")

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "tweets.chunks.ready")
	viper.SetDefault("kafka.group_id", "tweet-insights-indexer")

	// Twitter
	viper.SetDefault("twitter.query", `"CDC" OR "Centers for Disease Control" OR @CDCgov OR #CDC -is:retweet`)

	// JWT
	viper.SetDefault("jwt.issuer", "tweet-insights")
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Dashboard
	viper.SetDefault("dashboard.relevance_threshold", 0.58)
	viper.SetDefault("dashboard.cache_ttl", 300)
	viper.SetDefault("dashboard.aggregate_limit", 1000)
	viper.SetDefault("dashboard.ranked_limit", 25)
	viper.SetDefault("dashboard.popular_limit", 5)
	viper.SetDefault("dashboard.default_range_days", 7)

	// Search
	viper.SetDefault("search.suggest_limit", 5)
	viper.SetDefault("search.suggest_cache_ttl", 60)

	// Chat
	viper.SetDefault("chat.retrieve_limit", 10)
	viper.SetDefault("chat.rewrite_temperature", 0.0)
	viper.SetDefault("chat.rewrite_max_tokens", 100)
	viper.SetDefault("chat.answer_temperature", 0.7)

	// Ingestion
	viper.SetDefault("ingestion.schedule", "0 6 * * *")
	viper.SetDefault("ingestion.timezone", "UTC")
	viper.SetDefault("ingestion.max_tweets", 500)
	viper.SetDefault("ingestion.top_n", 100)
	viper.SetDefault("ingestion.chunk_size", 512)
	viper.SetDefault("ingestion.chunk_overlap", 50)

	// Indexing
	viper.SetDefault("indexing.concurrency", 4)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters")
	}
	for service, key := range cfg.Internal.ServiceKeys {
		if key == "" {
			return fmt.Errorf("internal.service_keys.%s must not be empty", service)
		}
	}
	if cfg.Dashboard.RelevanceThreshold < 0 || cfg.Dashboard.RelevanceThreshold > 1 {
		return fmt.Errorf("dashboard.relevance_threshold must be within [0, 1]")
	}
	if cfg.Dashboard.CacheTTL <= 0 {
		return fmt.Errorf("dashboard.cache_ttl must be positive")
	}
	if cfg.Dashboard.PopularLimit <= 0 || cfg.Dashboard.RankedLimit < cfg.Dashboard.PopularLimit {
		return fmt.Errorf("dashboard.ranked_limit must be at least dashboard.popular_limit")
	}
	if cfg.Ingestion.ChunkSize <= 0 || cfg.Ingestion.ChunkOverlap < 0 || cfg.Ingestion.ChunkOverlap >= cfg.Ingestion.ChunkSize {
		return fmt.Errorf("ingestion.chunk_overlap must be smaller than ingestion.chunk_size")
	}
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required")
	}
	return nil
}
