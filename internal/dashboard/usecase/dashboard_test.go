package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/dashboard/repository"
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoint struct {
	mu        sync.Mutex
	results   []point.SearchOutput
	facets    map[string][]point.FacetOutput
	searchErr error
	facetErr  map[string]error
	limits    []uint64
	filters   []*point.Filter

	// facetBarrier, when set, blocks each Facet call until that many calls are in flight.
	facetBarrier int
	facetArrived int
	facetRelease chan struct{}
}

func (f *fakePoint) EnsureCollections(context.Context) error { return nil }

func (f *fakePoint) Search(_ context.Context, in point.SearchInput) ([]point.SearchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, in.Limit)
	f.filters = append(f.filters, in.Filter)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	n := int(in.Limit)
	if n > len(f.results) {
		n = len(f.results)
	}
	return f.results[:n], nil
}

func (f *fakePoint) Upsert(context.Context, point.UpsertInput) error { return nil }

func (f *fakePoint) Scroll(context.Context, point.ScrollInput) ([]model.Point, error) {
	return nil, nil
}

func (f *fakePoint) Facet(ctx context.Context, in point.FacetInput) ([]point.FacetOutput, error) {
	f.mu.Lock()
	if err := f.facetErr[in.Key]; err != nil {
		f.mu.Unlock()
		return nil, err
	}
	release := f.facetRelease
	if f.facetBarrier > 0 {
		f.facetArrived++
		if f.facetArrived == f.facetBarrier {
			close(release)
		}
	}
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return nil, errors.New("facet calls did not overlap")
		}
	}
	return f.facets[in.Key], nil
}

type fakeEmbedding struct{ err error }

func (f fakeEmbedding) Generate(context.Context, embedding.GenerateInput) (embedding.GenerateOutput, error) {
	if f.err != nil {
		return embedding.GenerateOutput{}, f.err
	}
	return embedding.GenerateOutput{Vector: []float32{1, 0}}, nil
}

func (f fakeEmbedding) GenerateMany(context.Context, embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	return embedding.GenerateManyOutput{}, nil
}

type fakeCache struct {
	stored  map[string]dashboard.Payload
	getErr  error
	saveErr error
	saves   int
}

func (f *fakeCache) GetDashboard(_ context.Context, start, end string) (dashboard.Payload, error) {
	if f.getErr != nil {
		return dashboard.Payload{}, f.getErr
	}
	p, ok := f.stored[start+"|"+end]
	if !ok {
		return dashboard.Payload{}, repository.ErrCacheMiss
	}
	return p, nil
}

func (f *fakeCache) SaveDashboard(_ context.Context, p dashboard.Payload, _ time.Duration) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored[p.StartDate+"|"+p.EndDate] = p
	return nil
}

func testConfig() Config {
	return Config{
		RelevanceThreshold: 0.58,
		CacheTTL:           300 * time.Second,
		AggregateLimit:     1000,
		RankedLimit:        25,
		PopularLimit:       5,
		DefaultRangeDays:   7,
	}
}

func newTestUseCase(p *fakePoint, e fakeEmbedding, c *fakeCache) *implUseCase {
	uc := New(log.NewNop(), p, e, c, testConfig()).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2024, 5, 8, 15, 0, 0, 0, time.UTC) }
	return uc
}

func output(id string, score float32, day, sentiment string, likes int64) point.SearchOutput {
	return point.SearchOutput{
		ID:    id,
		Score: score,
		Payload: map[string]interface{}{
			"text":       "tweet " + id,
			"created_at": day + "T10:00:00Z",
			"sentiment":  sentiment,
			"language":   "en",
			"like_count": likes,
		},
	}
}

func TestGetDashboard_Build(t *testing.T) {
	p := &fakePoint{
		results: []point.SearchOutput{
			output("1", 0.9, "2024-05-01", "positive", 10),
			output("2", 0.3, "2024-05-01", "negative", 100),
			output("3", 0.7, "2024-05-02", "negative", 50),
		},
		facets: map[string][]point.FacetOutput{
			"created_day": {{Value: "2024-05-02", Count: 1}, {Value: "2024-05-01", Count: 2}},
			"sentiment":   {{Value: "negative", Count: 2}, {Value: "positive", Count: 1}},
			"language":    {{Value: "en", Count: 3}},
		},
	}
	c := &fakeCache{stored: map[string]dashboard.Payload{}}
	uc := newTestUseCase(p, fakeEmbedding{}, c)

	got, err := uc.GetDashboard(context.Background(), dashboard.GetDashboardInput{StartDate: "2024-05-01", EndDate: "2024-05-02"})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", got.StartDate)
	assert.Equal(t, []dashboard.DateCount{{Date: "2024-05-01", Count: 1}, {Date: "2024-05-02", Count: 1}}, got.DateCounts)
	assert.Equal(t, []dashboard.LabelCount{{Label: "Positive", Count: 1}, {Label: "Negative", Count: 1}}, got.SentimentLabelCounts)
	assert.Equal(t, []dashboard.LanguageCount{{Language: "English", Count: 2}}, got.LanguageCounts)
	assert.Equal(t, []dashboard.DateScore{{Date: "2024-05-01", Score: 1}, {Date: "2024-05-02", Score: 0}}, got.DateSentimentScores)
	require.Len(t, got.PopularTweets, 2)
	assert.Equal(t, "tweet 3", got.PopularTweets[0].Text)
	assert.Equal(t, "English", got.PopularTweets[0].Language)

	assert.ElementsMatch(t, []uint64{1000, 25}, p.limits)
	assert.Equal(t, 1, c.saves)

	// second call is served from cache
	_, err = uc.GetDashboard(context.Background(), dashboard.GetDashboardInput{StartDate: "2024-05-01", EndDate: "2024-05-02"})
	require.NoError(t, err)
	assert.Len(t, p.limits, 2)
}

func TestGetDashboard_DefaultRange(t *testing.T) {
	p := &fakePoint{}
	c := &fakeCache{stored: map[string]dashboard.Payload{}}
	uc := newTestUseCase(p, fakeEmbedding{}, c)

	got, err := uc.GetDashboard(context.Background(), dashboard.GetDashboardInput{})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.StartDate)
	assert.Equal(t, "2024-05-08", got.EndDate)

	require.NotEmpty(t, p.filters)
	r := p.filters[0].GetMust()[0].GetField().GetRange()
	assert.Equal(t, float64(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Unix()), r.GetGte())
	assert.Equal(t, float64(time.Date(2024, 5, 8, 23, 59, 59, 0, time.UTC).Unix()), r.GetLte())
}

func TestGetDashboard_InvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakePoint{}, fakeEmbedding{}, &fakeCache{stored: map[string]dashboard.Payload{}})
	ctx := context.Background()

	_, err := uc.GetDashboard(ctx, dashboard.GetDashboardInput{StartDate: "2024-05-03", EndDate: "2024-05-01"})
	assert.ErrorIs(t, err, dashboard.ErrInvalidDateRange)

	_, err = uc.GetDashboard(ctx, dashboard.GetDashboardInput{StartDate: "05/01/2024"})
	assert.ErrorIs(t, err, dashboard.ErrInvalidDateRange)
}

func TestGetDashboard_CacheFailureProceeds(t *testing.T) {
	p := &fakePoint{}
	c := &fakeCache{stored: map[string]dashboard.Payload{}, getErr: errors.New("redis down"), saveErr: errors.New("redis down")}
	uc := newTestUseCase(p, fakeEmbedding{}, c)

	_, err := uc.GetDashboard(context.Background(), dashboard.GetDashboardInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, c.saves)
}

func TestGetDashboard_UpstreamErrors(t *testing.T) {
	ctx := context.Background()

	uc := newTestUseCase(&fakePoint{}, fakeEmbedding{err: errors.New("voyage down")}, &fakeCache{stored: map[string]dashboard.Payload{}})
	_, err := uc.GetDashboard(ctx, dashboard.GetDashboardInput{})
	assert.ErrorIs(t, err, dashboard.ErrEmbeddingFailed)

	uc = newTestUseCase(&fakePoint{searchErr: errors.New("qdrant down")}, fakeEmbedding{}, &fakeCache{stored: map[string]dashboard.Payload{}})
	_, err = uc.GetDashboard(ctx, dashboard.GetDashboardInput{})
	assert.ErrorIs(t, err, dashboard.ErrSearchFailed)
}

func TestFacets_RunConcurrently(t *testing.T) {
	p := &fakePoint{
		facets: map[string][]point.FacetOutput{
			dashboard.FacetDate.Field():      {{Value: "2024-05-02", Count: 3}},
			dashboard.FacetSentiment.Field(): {{Value: "positive", Count: 2}},
			dashboard.FacetLanguage.Field():  {{Value: "en", Count: 3}},
			dashboard.FacetEntity.Field():    {{Value: "CDC", Count: 1}},
		},
		facetBarrier: len(dashboard.FacetKinds),
		facetRelease: make(chan struct{}),
	}
	uc := newTestUseCase(p, fakeEmbedding{}, &fakeCache{stored: map[string]dashboard.Payload{}})

	set, err := uc.facets(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, set, len(dashboard.FacetKinds))
	assert.Equal(t, []dashboard.FacetBucket{{Kind: dashboard.FacetLanguage, Value: "en", Count: 3}}, set[dashboard.FacetLanguage])
	assert.Equal(t, []dashboard.FacetBucket{{Kind: dashboard.FacetEntity, Value: "CDC", Count: 1}}, set[dashboard.FacetEntity])
}

func TestFacets_Error(t *testing.T) {
	p := &fakePoint{facetErr: map[string]error{dashboard.FacetSentiment.Field(): errors.New("qdrant down")}}
	uc := newTestUseCase(p, fakeEmbedding{}, &fakeCache{stored: map[string]dashboard.Payload{}})

	_, err := uc.facets(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qdrant down")
}
