package repository

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Get when no vector is cached for the key.
var ErrCacheMiss = errors.New("embedding: cache miss")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, opt GetOptions) ([]float32, error)
	Save(ctx context.Context, opt SaveOptions) error
}
