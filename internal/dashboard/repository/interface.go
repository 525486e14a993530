package repository

import (
	"context"
	"errors"
	"time"

	"tweet-insights-srv/internal/dashboard"
)

var ErrCacheMiss = errors.New("repository: cache miss")

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetDashboard(ctx context.Context, startDate, endDate string) (dashboard.Payload, error)
	SaveDashboard(ctx context.Context, payload dashboard.Payload, ttl time.Duration) error
}
