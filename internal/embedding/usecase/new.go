package usecase

import (
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/embedding/repository"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/voyage"
)

type implUseCase struct {
	repo   repository.Repository
	voyage voyage.IVoyage
	model  string
	l      log.Logger
}

func New(repo repository.Repository, voyage voyage.IVoyage, model string, l log.Logger) embedding.UseCase {
	return &implUseCase{
		repo:   repo,
		voyage: voyage,
		model:  model,
		l:      l,
	}
}
