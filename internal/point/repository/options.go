package repository

import (
	"tweet-insights-srv/internal/model"
	pkgQdrant "tweet-insights-srv/pkg/qdrant"

	"github.com/qdrant/go-client/qdrant"
)

type EnsureCollectionOptions struct {
	Collection string
	VectorSize uint64
	Indexes    []pkgQdrant.FieldIndex
}

type SearchOptions struct {
	Collection     string
	Vector         []float32
	Filter         *qdrant.Filter
	Limit          uint64
	ScoreThreshold float32
}

type UpsertOptions struct {
	Collection string
	Points     []model.Point
}

type ScrollOptions struct {
	Collection string
	Filter     *qdrant.Filter
	Limit      uint32
}

type FacetOptions struct {
	Collection string
	Key        string
	Filter     *qdrant.Filter
	Limit      uint64
}
