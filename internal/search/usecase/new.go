package usecase

import (
	"time"

	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/search"
	"tweet-insights-srv/internal/search/repository"
	"tweet-insights-srv/pkg/log"
)

// Config - suggestion settings
type Config struct {
	Limit    int           // Max suggestions returned (capped at search.MaxSuggestions)
	CacheTTL time.Duration // Memo lifetime per query
}

type implUseCase struct {
	pointUC     point.UseCase
	embeddingUC embedding.UseCase
	cacheRepo   repository.CacheRepository
	l           log.Logger
	cfg         Config
}

// New - Factory function
func New(
	pointUC point.UseCase,
	embeddingUC embedding.UseCase,
	cacheRepo repository.CacheRepository,
	l log.Logger,
	cfg Config,
) search.UseCase {
	if cfg.Limit <= 0 || cfg.Limit > search.MaxSuggestions {
		cfg.Limit = search.MaxSuggestions
	}
	return &implUseCase{
		pointUC:     pointUC,
		embeddingUC: embeddingUC,
		cacheRepo:   cacheRepo,
		l:           l,
		cfg:         cfg,
	}
}
