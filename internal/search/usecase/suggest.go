package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/search"
	"tweet-insights-srv/internal/search/repository"
	"tweet-insights-srv/pkg/metrics"
	"tweet-insights-srv/pkg/util"

	"github.com/qdrant/go-client/qdrant"
)

const cacheName = "suggest"

// Suggest - tweet texts matching the query
// Flow: check cache → full-text match → semantic fill → normalize + dedupe → cache → return
func (uc *implUseCase) Suggest(ctx context.Context, input search.SuggestInput) ([]string, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return []string{}, nil
	}
	if len(query) > search.MaxQueryLength {
		return nil, search.ErrQueryTooLong
	}

	// Step 1: Memo
	cached, err := uc.cacheRepo.GetSuggestions(ctx, query)
	switch {
	case err == nil:
		metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheHit).Inc()
		return cached, nil
	case errors.Is(err, repository.ErrCacheMiss):
		metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheMiss).Inc()
	default:
		metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheError).Inc()
		uc.l.Warnf(ctx, "search.usecase.Suggest: cache lookup failed: %v", err)
	}

	set := newSuggestionSet(uc.cfg.Limit)

	// Step 2: Full-text match on the text index
	points, err := uc.pointUC.Scroll(ctx, point.ScrollInput{
		Collection: point.CollectionTweets,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{qdrant.NewMatchText("text", query)},
		},
		Limit: uint32(uc.cfg.Limit * 2),
	})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Suggest: text match failed: %v", err)
		return nil, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
	}
	for _, p := range points {
		set.add(model.PayloadString(p.Payload, "text"))
	}

	// Step 3: Semantic fill
	if !set.full() {
		emb, err := uc.embeddingUC.Generate(ctx, embedding.GenerateInput{
			Text:      query,
			InputType: embedding.InputTypeQuery,
		})
		if err != nil {
			uc.l.Errorf(ctx, "search.usecase.Suggest: embedding generation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", search.ErrEmbeddingFailed, err)
		}
		results, err := uc.pointUC.Search(ctx, point.SearchInput{
			Collection: point.CollectionTweets,
			Vector:     emb.Vector,
			Limit:      uint64(uc.cfg.Limit * 2),
		})
		if err != nil {
			uc.l.Errorf(ctx, "search.usecase.Suggest: vector search failed: %v", err)
			return nil, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
		}
		for _, r := range results {
			set.add(model.PayloadString(r.Payload, "text"))
		}
	}

	// Step 4: Memo
	out := set.items
	if err := uc.cacheRepo.SaveSuggestions(ctx, query, out, uc.cfg.CacheTTL); err != nil {
		uc.l.Warnf(ctx, "search.usecase.Suggest: failed to save cache: %v", err)
	}
	return out, nil
}

// suggestionSet keeps distinct whitespace-normalized texts in insertion order.
type suggestionSet struct {
	limit int
	seen  map[string]struct{}
	items []string
}

func newSuggestionSet(limit int) *suggestionSet {
	return &suggestionSet{limit: limit, seen: make(map[string]struct{}), items: []string{}}
}

func (s *suggestionSet) full() bool {
	return len(s.items) >= s.limit
}

func (s *suggestionSet) add(text string) {
	text = util.CollapseWhitespace(text)
	if text == "" || s.full() {
		return
	}
	if _, ok := s.seen[text]; ok {
		return
	}
	s.seen[text] = struct{}{}
	s.items = append(s.items, text)
}
