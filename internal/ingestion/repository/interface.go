package repository

import (
	"context"

	"tweet-insights-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateRun(ctx context.Context, opt CreateRunOptions) (model.IngestionRun, error)
	FinishRun(ctx context.Context, opt FinishRunOptions) error
	ListRuns(ctx context.Context, opt ListRunsOptions) ([]model.IngestionRun, error)
	CountRuns(ctx context.Context) (int64, error)
}
