package redis

import (
	"tweet-insights-srv/internal/dashboard/repository"
	"tweet-insights-srv/pkg/log"
	pkgRedis "tweet-insights-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
