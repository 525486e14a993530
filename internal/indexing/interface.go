package indexing

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Index loads one chunk batch from object storage and upserts it into the tweet collections.
	// When some tweets fail, the counters are returned together with a non-nil error.
	Index(ctx context.Context, input IndexInput) (IndexOutput, error)
}
