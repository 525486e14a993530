package voyage

import (
	"context"
	"time"

	pkghttp "tweet-insights-srv/pkg/http"
)

// IVoyage defines the interface for Voyage AI embeddings.
// Implementations are safe for concurrent use.
type IVoyage interface {
	// Embed returns one vector per text, in input order. inputType is InputTypeQuery,
	// InputTypeDocument or empty.
	Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error)
}

// NewVoyage creates a new Voyage client. APIKey must be set; Embed returns an error if it is empty.
func NewVoyage(cfg VoyageConfig) IVoyage {
	if cfg.Model == "" {
		cfg.Model = Model
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = Endpoint
	}
	return &voyageImpl{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: cfg.Endpoint,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}
}
