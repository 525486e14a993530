package usecase

import (
	"context"

	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
)

func (uc *implUseCase) Upsert(ctx context.Context, input point.UpsertInput) error {
	if !validCollection(input.Collection) {
		return point.ErrUnknownCollection
	}
	if len(input.Points) == 0 {
		return nil
	}
	return uc.repo.Upsert(ctx, repository.UpsertOptions{
		Collection: input.Collection,
		Points:     input.Points,
	})
}
