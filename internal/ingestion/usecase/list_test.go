package usecase

import (
	"context"
	"testing"

	"tweet-insights-srv/internal/ingestion"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/paginator"
	"tweet-insights-srv/pkg/twitter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRuns(t *testing.T) {
	h := newHarness(100)
	h.repo.total = 25
	h.repo.runs = []model.IngestionRun{{ID: "r11"}, {ID: "r12"}}

	out, err := h.uc.ListRuns(context.Background(), ingestion.ListRunsInput{
		Paginator: paginator.PaginateQuery{Page: 2, Limit: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), h.repo.listOpt.Limit)
	assert.Equal(t, int64(10), h.repo.listOpt.Offset)
	assert.Len(t, out.Runs, 2)
	assert.Equal(t, int64(25), out.Paginator.Total)
	assert.Equal(t, int64(2), out.Paginator.Count)
	assert.Equal(t, 3, out.Paginator.ToResponse().TotalPages)
}

func TestTopByPopularity_Stable(t *testing.T) {
	tweets := []twitter.Tweet{
		tweet("a", "CDC", 2),
		tweet("b", "CDC", 4),
		tweet("c", "CDC", 2),
		tweet("d", "CDC", 4),
	}
	got := topByPopularity(tweets, 3)
	ids := make([]string, len(got))
	for i, tw := range got {
		ids[i] = tw.ID
	}
	assert.Equal(t, []string{"b", "d", "a"}, ids)
	assert.Equal(t, "a", tweets[0].ID)
}
