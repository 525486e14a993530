package ingestion

import (
	"context"

	"tweet-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Run fetches, filters, ranks and chunks one day of tweets, then hands the batch to the indexer.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
	ListRuns(ctx context.Context, input ListRunsInput) (ListRunsOutput, error)
}

// Producer announces uploaded chunk batches to the indexer.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishChunksReady(ctx context.Context, event model.ChunksReadyEvent) error
}
