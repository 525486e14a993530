package point

import (
	"context"

	"tweet-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	EnsureCollections(ctx context.Context) error
	Search(ctx context.Context, input SearchInput) ([]SearchOutput, error)
	Upsert(ctx context.Context, input UpsertInput) error
	Scroll(ctx context.Context, input ScrollInput) ([]model.Point, error)
	Facet(ctx context.Context, input FacetInput) ([]FacetOutput, error)
}
