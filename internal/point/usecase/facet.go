package usecase

import (
	"context"

	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
)

func (uc *implUseCase) Facet(ctx context.Context, input point.FacetInput) ([]point.FacetOutput, error) {
	if !validCollection(input.Collection) {
		return nil, point.ErrUnknownCollection
	}
	return uc.repo.Facet(ctx, repository.FacetOptions{
		Collection: input.Collection,
		Key:        input.Key,
		Filter:     input.Filter,
		Limit:      input.Limit,
	})
}
