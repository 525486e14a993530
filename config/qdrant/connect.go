package qdrant

import (
	"fmt"
	"time"

	"tweet-insights-srv/config"
	"tweet-insights-srv/pkg/qdrant"
)

// Connect creates a Qdrant gRPC client. NewQdrant pings the server before returning.
func Connect(cfg config.QdrantConfig) (qdrant.IQdrant, error) {
	client, err := qdrant.NewQdrant(qdrant.QdrantConfig{
		Host:    cfg.Host,
		Port:    cfg.Port,
		UseTLS:  cfg.UseTLS,
		APIKey:  cfg.APIKey,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant client: %w", err)
	}
	return client, nil
}
