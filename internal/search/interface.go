package search

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Suggest(ctx context.Context, input SuggestInput) ([]string, error)
}
