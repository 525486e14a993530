package usecase

import (
	"time"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/dashboard/repository"
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/log"
)

// Config holds the dashboard query settings.
type Config struct {
	RelevanceThreshold float32
	CacheTTL           time.Duration
	AggregateLimit     int
	RankedLimit        int
	PopularLimit       int
	DefaultRangeDays   int
}

type implUseCase struct {
	l         log.Logger
	point     point.UseCase
	embedding embedding.UseCase
	cache     repository.CacheRepository
	cfg       Config
	now       func() time.Time
}

func New(l log.Logger, pointUC point.UseCase, embeddingUC embedding.UseCase, cache repository.CacheRepository, cfg Config) dashboard.UseCase {
	return &implUseCase{
		l:         l,
		point:     pointUC,
		embedding: embeddingUC,
		cache:     cache,
		cfg:       cfg,
		now:       time.Now,
	}
}
