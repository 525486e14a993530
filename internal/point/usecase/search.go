package usecase

import (
	"context"

	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
)

func (uc *implUseCase) Search(ctx context.Context, input point.SearchInput) ([]point.SearchOutput, error) {
	if !validCollection(input.Collection) {
		return nil, point.ErrUnknownCollection
	}
	if len(input.Vector) == 0 {
		return nil, point.ErrEmptyVector
	}
	return uc.repo.Search(ctx, repository.SearchOptions{
		Collection:     input.Collection,
		Vector:         input.Vector,
		Filter:         input.Filter,
		Limit:          input.Limit,
		ScoreThreshold: input.ScoreThreshold,
	})
}
