package embedding

import (
	"context"
)

// UseCase embeds text with the configured model. Vectors are served from the Redis cache when
// present and written back after every upstream call.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	// GenerateMany keeps input order and only sends cache misses upstream.
	GenerateMany(ctx context.Context, input GenerateManyInput) (GenerateManyOutput, error)
}
