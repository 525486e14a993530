package qdrant

import (
	"tweet-insights-srv/internal/point/repository"
	"tweet-insights-srv/pkg/log"
	pkgQdrant "tweet-insights-srv/pkg/qdrant"
)

type implRepository struct {
	client pkgQdrant.IQdrant
	l      log.Logger
}

func New(client pkgQdrant.IQdrant, l log.Logger) repository.QdrantRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
