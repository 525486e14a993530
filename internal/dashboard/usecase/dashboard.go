package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/dashboard/repository"
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/metrics"
	"tweet-insights-srv/pkg/util"

	"github.com/qdrant/go-client/qdrant"
	"golang.org/x/sync/errgroup"
)

const cacheName = "dashboard"

func (uc *implUseCase) GetDashboard(ctx context.Context, input dashboard.GetDashboardInput) (dashboard.Payload, error) {
	start, end, err := uc.resolveRange(input)
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.GetDashboard: %v", err)
		return dashboard.Payload{}, err
	}
	startDate, endDate := util.DayUTC(start), util.DayUTC(end)

	cached, err := uc.cache.GetDashboard(ctx, startDate, endDate)
	switch {
	case err == nil:
		metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheHit).Inc()
		return cached, nil
	case errors.Is(err, repository.ErrCacheMiss):
		metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheMiss).Inc()
	default:
		metrics.CacheRequestsTotal.WithLabelValues(cacheName, metrics.CacheError).Inc()
		uc.l.Warnf(ctx, "dashboard.usecase.GetDashboard: cache read failed: %v", err)
	}

	began := time.Now()
	payload, err := uc.build(ctx, start, util.EndOfDayUTC(end))
	if err != nil {
		return dashboard.Payload{}, err
	}
	metrics.DashboardBuildSeconds.Observe(time.Since(began).Seconds())
	payload.StartDate, payload.EndDate = startDate, endDate

	if err := uc.cache.SaveDashboard(ctx, payload, uc.cfg.CacheTTL); err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.GetDashboard: cache write failed: %v", err)
	}
	return payload, nil
}

// resolveRange applies the default window and validates the dates.
func (uc *implUseCase) resolveRange(input dashboard.GetDashboardInput) (time.Time, time.Time, error) {
	today := util.StartOfDayUTC(uc.now())

	end := today
	if input.EndDate != "" {
		t, err := util.ParseDateUTC(input.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q", dashboard.ErrInvalidDateRange, input.EndDate)
		}
		end = t
	}

	start := today.AddDate(0, 0, -uc.cfg.DefaultRangeDays)
	if input.StartDate != "" {
		t, err := util.ParseDateUTC(input.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q", dashboard.ErrInvalidDateRange, input.StartDate)
		}
		start = t
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date after end_date", dashboard.ErrInvalidDateRange)
	}
	return start, end, nil
}

func dateRangeFilter(start, end time.Time) *point.Filter {
	gte := float64(start.Unix())
	lte := float64(end.Unix())
	return &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewRange("created_ts", &qdrant.Range{Gte: &gte, Lte: &lte}),
		},
	}
}

func (uc *implUseCase) build(ctx context.Context, start, end time.Time) (dashboard.Payload, error) {
	emb, err := uc.embedding.Generate(ctx, embedding.GenerateInput{Text: relevanceQuery, InputType: embedding.InputTypeQuery})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.build: embed relevance query: %v", err)
		return dashboard.Payload{}, fmt.Errorf("%w: %v", dashboard.ErrEmbeddingFailed, err)
	}
	filter := dateRangeFilter(start, end)

	var (
		aggregateHits []model.SearchHit
		rankedHits    []model.SearchHit
		facets        dashboard.FacetSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := uc.search(gctx, emb.Vector, filter, uc.cfg.AggregateLimit)
		aggregateHits = hits
		return err
	})
	g.Go(func() error {
		f, err := uc.facets(gctx, filter)
		facets = f
		return err
	})
	g.Go(func() error {
		hits, err := uc.search(gctx, emb.Vector, filter, uc.cfg.RankedLimit)
		rankedHits = hits
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.build: %v", err)
		return dashboard.Payload{}, fmt.Errorf("%w: %v", dashboard.ErrSearchFailed, err)
	}

	threshold := uc.cfg.RelevanceThreshold
	relevant, discarded := Partition(aggregateHits, threshold)
	reconciled := Reconcile(facets, relevant, discarded)
	sortDateCounts(reconciled.DateCounts)

	top := CollectRelevant(rankedHits, threshold, uc.cfg.PopularLimit)
	popular := make([]dashboard.PopularTweet, len(top))
	for i, h := range top {
		popular[i] = toPopularTweet(h)
	}

	return dashboard.Payload{
		DateCounts:           reconciled.DateCounts,
		SentimentLabelCounts: reconciled.SentimentLabelCounts,
		DateSentimentScores:  AverageSentimentByDay(relevant),
		LanguageCounts:       reconciled.LanguageCounts,
		EntityCounts:         reconciled.EntityCounts,
		PopularTweets:        RankByPopularity(popular),
	}, nil
}

func (uc *implUseCase) search(ctx context.Context, vector []float32, filter *point.Filter, limit int) ([]model.SearchHit, error) {
	results, err := uc.point.Search(ctx, point.SearchInput{
		Collection: point.CollectionTweets,
		Vector:     vector,
		Filter:     filter,
		Limit:      uint64(limit),
	})
	if err != nil {
		return nil, err
	}
	hits := make([]model.SearchHit, len(results))
	for i, r := range results {
		score := r.Score
		hits[i] = model.SearchHitFromPayload(r.ID, r.Payload, &score)
	}
	return hits, nil
}

// facets requests every facet kind concurrently.
func (uc *implUseCase) facets(ctx context.Context, filter *point.Filter) (dashboard.FacetSet, error) {
	slots := make([][]dashboard.FacetBucket, len(dashboard.FacetKinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range dashboard.FacetKinds {
		g.Go(func() error {
			out, err := uc.point.Facet(gctx, point.FacetInput{
				Collection: point.CollectionTweets,
				Key:        kind.Field(),
				Filter:     filter,
				Limit:      uint64(uc.cfg.AggregateLimit),
			})
			if err != nil {
				return fmt.Errorf("facet %s: %w", kind, err)
			}
			buckets := make([]dashboard.FacetBucket, len(out))
			for j, o := range out {
				buckets[j] = dashboard.FacetBucket{Kind: kind, Value: o.Value, Count: int64(o.Count)}
			}
			slots[i] = buckets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := make(dashboard.FacetSet, len(dashboard.FacetKinds))
	for i, kind := range dashboard.FacetKinds {
		set[kind] = slots[i]
	}
	return set, nil
}
