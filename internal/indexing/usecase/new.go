package usecase

import (
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/gemini"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/minio"
)

// DefaultConcurrency bounds the tweets processed in parallel.
const DefaultConcurrency = 4

// Config - indexing settings
type Config struct {
	Concurrency int
}

// implUseCase implements the indexing.UseCase interface
type implUseCase struct {
	l           log.Logger
	pointUC     point.UseCase
	embeddingUC embedding.UseCase
	storage     minio.FileDownloader
	gemini      gemini.IGemini
	cfg         Config
}

// New creates a new indexing usecase
func New(
	l log.Logger,
	pointUC point.UseCase,
	embeddingUC embedding.UseCase,
	storage minio.FileDownloader,
	geminiClient gemini.IGemini,
	cfg Config,
) indexing.UseCase {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &implUseCase{
		l:           l,
		pointUC:     pointUC,
		embeddingUC: embeddingUC,
		storage:     storage,
		gemini:      geminiClient,
		cfg:         cfg,
	}
}
