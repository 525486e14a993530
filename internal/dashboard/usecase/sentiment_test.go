package usecase

import (
	"testing"
	"time"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAverageSentimentByDay(t *testing.T) {
	day := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	next := day.Add(24 * time.Hour)
	hits := []model.SearchHit{
		{CreatedAt: next, Sentiment: "negative"},
		{CreatedAt: day, Sentiment: "positive"},
		{CreatedAt: day.Add(2 * time.Hour), Sentiment: " Neutral "},
		{CreatedAt: day.Add(3 * time.Hour), Sentiment: "negative"},
		{Sentiment: "positive"},
	}

	got := AverageSentimentByDay(hits)
	assert.Equal(t, []dashboard.DateScore{
		{Date: "2024-05-01", Score: 0.5},
		{Date: "2024-05-02", Score: 0},
	}, got)
}

func TestAverageSentimentByDay_UnknownLabelIsNeutral(t *testing.T) {
	day := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	got := AverageSentimentByDay([]model.SearchHit{
		{CreatedAt: day, Sentiment: "positive"},
		{CreatedAt: day, Sentiment: "mixed"},
	})
	assert.Equal(t, []dashboard.DateScore{{Date: "2024-05-01", Score: 0.75}}, got)
}

func TestAverageSentimentByDay_Empty(t *testing.T) {
	assert.Empty(t, AverageSentimentByDay(nil))
}
