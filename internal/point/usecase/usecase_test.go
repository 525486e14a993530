package usecase

import (
	"context"
	"errors"
	"testing"

	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
	"tweet-insights-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	ensured   []repository.EnsureCollectionOptions
	ensureErr error
	searched  []repository.SearchOptions
	upserted  []repository.UpsertOptions
}

func (f *fakeRepo) EnsureCollection(_ context.Context, opt repository.EnsureCollectionOptions) error {
	f.ensured = append(f.ensured, opt)
	return f.ensureErr
}

func (f *fakeRepo) Search(_ context.Context, opt repository.SearchOptions) ([]point.SearchOutput, error) {
	f.searched = append(f.searched, opt)
	return []point.SearchOutput{{ID: "a", Score: 0.9}}, nil
}

func (f *fakeRepo) Upsert(_ context.Context, opt repository.UpsertOptions) error {
	f.upserted = append(f.upserted, opt)
	return nil
}

func (f *fakeRepo) Scroll(context.Context, repository.ScrollOptions) ([]model.Point, error) {
	return nil, nil
}

func (f *fakeRepo) Facet(context.Context, repository.FacetOptions) ([]point.FacetOutput, error) {
	return nil, nil
}

func TestEnsureCollections(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(repo, log.NewNop(), 1024)

	require.NoError(t, uc.EnsureCollections(context.Background()))
	require.Len(t, repo.ensured, 2)
	assert.Equal(t, point.CollectionTweets, repo.ensured[0].Collection)
	assert.Equal(t, point.CollectionTweetChunks, repo.ensured[1].Collection)
	assert.Equal(t, uint64(1024), repo.ensured[0].VectorSize)
	assert.NotEmpty(t, repo.ensured[0].Indexes)
}

func TestEnsureCollections_Error(t *testing.T) {
	repo := &fakeRepo{ensureErr: errors.New("boom")}
	uc := New(repo, log.NewNop(), 1024)

	err := uc.EnsureCollections(context.Background())
	require.Error(t, err)
	assert.Len(t, repo.ensured, 1)
}

func TestSearch_Validation(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(repo, log.NewNop(), 1024)
	ctx := context.Background()

	_, err := uc.Search(ctx, point.SearchInput{Collection: "nope", Vector: []float32{1}})
	assert.ErrorIs(t, err, point.ErrUnknownCollection)

	_, err = uc.Search(ctx, point.SearchInput{Collection: point.CollectionTweets})
	assert.ErrorIs(t, err, point.ErrEmptyVector)

	out, err := uc.Search(ctx, point.SearchInput{Collection: point.CollectionTweets, Vector: []float32{1}, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	require.Len(t, repo.searched, 1)
	assert.Equal(t, uint64(3), repo.searched[0].Limit)
}

func TestUpsert_EmptyIsNoop(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(repo, log.NewNop(), 1024)

	require.NoError(t, uc.Upsert(context.Background(), point.UpsertInput{Collection: point.CollectionTweets}))
	assert.Empty(t, repo.upserted)
}
