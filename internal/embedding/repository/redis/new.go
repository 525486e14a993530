package redis

import (
	"tweet-insights-srv/internal/embedding/repository"
	"tweet-insights-srv/pkg/log"
	pkgRedis "tweet-insights-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
