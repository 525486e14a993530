package usecase

import (
	"context"

	"tweet-insights-srv/internal/ingestion"
	"tweet-insights-srv/internal/ingestion/repository"
	"tweet-insights-srv/pkg/paginator"
)

// ListRuns - paginated run ledger, most recent first
func (uc *implUseCase) ListRuns(ctx context.Context, input ingestion.ListRunsInput) (ingestion.ListRunsOutput, error) {
	q := input.Paginator
	q.Adjust()

	total, err := uc.repo.CountRuns(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.ListRuns: CountRuns failed: %v", err)
		return ingestion.ListRunsOutput{}, err
	}

	runs, err := uc.repo.ListRuns(ctx, repository.ListRunsOptions{Limit: q.Limit, Offset: q.Offset()})
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.ListRuns: ListRuns failed: %v", err)
		return ingestion.ListRunsOutput{}, err
	}

	return ingestion.ListRunsOutput{
		Runs:      runs,
		Paginator: paginator.New(q, total, int64(len(runs))),
	}, nil
}
