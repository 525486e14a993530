package redis

import (
	"context"
	"testing"
	"time"

	"tweet-insights-srv/internal/search/repository"
	"tweet-insights-srv/pkg/log"
	pkgRedis "tweet-insights-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	repo := New(pkgRedis.NewFromClient(client), log.NewNop())
	ctx := context.Background()

	_, err := repo.GetSuggestions(ctx, "vaccine")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	want := []string{"CDC vaccine guidance", "New vaccine data"}
	require.NoError(t, repo.SaveSuggestions(ctx, "vaccine", want, time.Minute))

	got, err := repo.GetSuggestions(ctx, "VACCINE")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	mr.FastForward(2 * time.Minute)
	_, err = repo.GetSuggestions(ctx, "vaccine")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}
