package redis

import (
	"context"
	"testing"
	"time"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/dashboard/repository"
	"tweet-insights-srv/pkg/log"
	pkgRedis "tweet-insights-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	repo := New(pkgRedis.NewFromClient(client), log.NewNop())
	ctx := context.Background()

	_, err := repo.GetDashboard(ctx, "2024-05-01", "2024-05-07")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	url := "https://en.wikipedia.org/wiki/CDC"
	payload := dashboard.Payload{
		StartDate:    "2024-05-01",
		EndDate:      "2024-05-07",
		DateCounts:   []dashboard.DateCount{{Date: "2024-05-01", Count: 7}},
		EntityCounts: []dashboard.EntityCount{{Name: "CDC", URL: &url, Count: 3}, {Name: "Flu", Count: 1}},
		PopularTweets: []dashboard.PopularTweet{{
			Text:      "hello",
			CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		}},
	}
	require.NoError(t, repo.SaveDashboard(ctx, payload, 300*time.Second))
	assert.Equal(t, 300*time.Second, mr.TTL("dashboard:2024-05-01:2024-05-07"))

	got, err := repo.GetDashboard(ctx, "2024-05-01", "2024-05-07")
	require.NoError(t, err)
	assert.Equal(t, payload.DateCounts, got.DateCounts)
	require.Len(t, got.EntityCounts, 2)
	assert.Equal(t, url, *got.EntityCounts[0].URL)
	assert.Nil(t, got.EntityCounts[1].URL)
	assert.True(t, payload.PopularTweets[0].CreatedAt.Equal(got.PopularTweets[0].CreatedAt))

	mr.FastForward(301 * time.Second)
	_, err = repo.GetDashboard(ctx, "2024-05-01", "2024-05-07")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}
