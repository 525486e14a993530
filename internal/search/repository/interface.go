package repository

import (
	"context"
	"time"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSuggestions(ctx context.Context, query string) ([]string, error)
	SaveSuggestions(ctx context.Context, query string, suggestions []string, ttl time.Duration) error
}
