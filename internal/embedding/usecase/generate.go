package usecase

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/embedding/repository"
	"tweet-insights-srv/pkg/metrics"
)

const cacheName = "embedding"

func (uc *implUseCase) Generate(ctx context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	if input.Text == "" {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: empty text")
		return embedding.GenerateOutput{}, embedding.ErrEmptyText
	}

	out, err := uc.GenerateMany(ctx, embedding.GenerateManyInput{
		Texts:     []string{input.Text},
		InputType: input.InputType,
	})
	if err != nil {
		return embedding.GenerateOutput{}, err
	}
	return embedding.GenerateOutput{Vector: out.Vectors[0]}, nil
}

func (uc *implUseCase) GenerateMany(ctx context.Context, input embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	if len(input.Texts) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: empty texts")
		return embedding.GenerateManyOutput{}, embedding.ErrEmptyTexts
	}
	inputType := input.InputType
	if inputType == "" {
		inputType = embedding.InputTypeQuery
	}

	results := make([][]float32, len(input.Texts))
	keys := make([]string, len(input.Texts))
	missIndices := []int{}
	missTexts := []string{}

	// 1. Check cache for each
	for i, text := range input.Texts {
		keys[i] = uc.cacheKey(inputType, text)
		cached, err := uc.repo.Get(ctx, repository.GetOptions{Key: keys[i]})
		switch {
		case err == nil && cached != nil:
			metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheHit).Inc()
			results[i] = cached
			continue
		case err == nil || errors.Is(err, repository.ErrCacheMiss):
			metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheMiss).Inc()
		default:
			metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheError).Inc()
		}
		missIndices = append(missIndices, i)
		missTexts = append(missTexts, text)
	}

	if len(missIndices) == 0 {
		return embedding.GenerateManyOutput{Vectors: results}, nil
	}

	// 2. Call Voyage for misses
	vectors, err := uc.voyage.Embed(ctx, missTexts, inputType)
	if err != nil {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: Voyage embed failed: %v", err)
		return embedding.GenerateManyOutput{}, fmt.Errorf("%w: %v", embedding.ErrEmbedFailed, err)
	}
	if len(vectors) != len(missTexts) {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: mismatch vector count")
		return embedding.GenerateManyOutput{}, embedding.ErrMismatchVectorCount
	}

	// 3. Save cache for misses and fill results; save failures are only logged
	for i, vector := range vectors {
		origIdx := missIndices[i]
		results[origIdx] = vector
		if err := uc.repo.Save(ctx, repository.SaveOptions{
			Key:    keys[origIdx],
			Vector: vector,
		}); err != nil {
			uc.l.Warnf(ctx, "embedding.usecase.GenerateMany: cache save failed: %v", err)
		}
	}

	return embedding.GenerateManyOutput{Vectors: results}, nil
}

func (uc *implUseCase) cacheKey(inputType, text string) string {
	return fmt.Sprintf("%s:%s:%x", uc.model, inputType, sha256.Sum256([]byte(text)))
}
