package usecase

import (
	"context"

	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
)

func (uc *implUseCase) Scroll(ctx context.Context, input point.ScrollInput) ([]model.Point, error) {
	if !validCollection(input.Collection) {
		return nil, point.ErrUnknownCollection
	}
	return uc.repo.Scroll(ctx, repository.ScrollOptions{
		Collection: input.Collection,
		Filter:     input.Filter,
		Limit:      input.Limit,
	})
}
