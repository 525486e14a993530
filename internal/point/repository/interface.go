package repository

import (
	"context"

	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
)

//go:generate mockery --name QdrantRepository
type QdrantRepository interface {
	EnsureCollection(ctx context.Context, opt EnsureCollectionOptions) error
	Search(ctx context.Context, opt SearchOptions) ([]point.SearchOutput, error)
	Upsert(ctx context.Context, opt UpsertOptions) error
	Scroll(ctx context.Context, opt ScrollOptions) ([]model.Point, error)
	Facet(ctx context.Context, opt FacetOptions) ([]point.FacetOutput, error)
}
