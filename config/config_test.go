package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("DASHBOARD_CACHE_TTL", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.58, cfg.Dashboard.RelevanceThreshold)
	assert.Equal(t, 120, cfg.Dashboard.CacheTTL)
	assert.Equal(t, 1000, cfg.Dashboard.AggregateLimit)
	assert.Equal(t, 25, cfg.Dashboard.RankedLimit)
	assert.Equal(t, 5, cfg.Dashboard.PopularLimit)
	assert.Equal(t, "0 6 * * *", cfg.Ingestion.Schedule)
	assert.Equal(t, 512, cfg.Ingestion.ChunkSize)
	assert.Equal(t, 50, cfg.Ingestion.ChunkOverlap)
	assert.Equal(t, "tweets.chunks.ready", cfg.Kafka.Topic)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080},
			JWT:        JWTConfig{SecretKey: "0123456789abcdef0123456789abcdef"},
			Dashboard:  DashboardConfig{RelevanceThreshold: 0.58, CacheTTL: 300, RankedLimit: 25, PopularLimit: 5},
			Ingestion:  IngestionConfig{ChunkSize: 512, ChunkOverlap: 50},
			Kafka:      KafkaConfig{Brokers: []string{"localhost:9092"}},
		}
	}
	assert.NoError(t, validate(base()))

	c := base()
	c.JWT.SecretKey = "short"
	assert.Error(t, validate(c))

	c = base()
	c.Dashboard.RelevanceThreshold = 1.5
	assert.Error(t, validate(c))

	c = base()
	c.Ingestion.ChunkOverlap = 512
	assert.Error(t, validate(c))

	c = base()
	c.Dashboard.RankedLimit = 3
	assert.Error(t, validate(c))

	c = base()
	c.Internal.ServiceKeys = map[string]string{"ingestion": ""}
	assert.Error(t, validate(c))
}
