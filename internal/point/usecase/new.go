package usecase

import (
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
	"tweet-insights-srv/pkg/log"
)

type implUseCase struct {
	repo       repository.QdrantRepository
	l          log.Logger
	vectorSize uint64
}

func New(repo repository.QdrantRepository, l log.Logger, vectorSize uint64) point.UseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		vectorSize: vectorSize,
	}
}
