package usecase

import (
	"tweet-insights-srv/internal/chat"
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/gemini"
	"tweet-insights-srv/pkg/log"
)

// Config holds the model parameters of the pipeline.
type Config struct {
	RetrieveLimit      int
	RewriteTemperature float32
	RewriteMaxTokens   int
	AnswerTemperature  float32
}

type implUseCase struct {
	l         log.Logger
	gemini    gemini.IGemini
	embedding embedding.UseCase
	point     point.UseCase
	cfg       Config
}

// New - Factory function
func New(
	l log.Logger,
	gemini gemini.IGemini,
	embeddingUC embedding.UseCase,
	pointUC point.UseCase,
	cfg Config,
) chat.UseCase {
	return &implUseCase{
		l:         l,
		gemini:    gemini,
		embedding: embeddingUC,
		point:     pointUC,
		cfg:       cfg,
	}
}
