package usecase

import (
	"sort"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/label"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/util"
)

// AverageSentimentByDay averages the sentiment score of the relevant hits per UTC day.
// Days are ascending. Hits without a timestamp are skipped.
func AverageSentimentByDay(relevant []model.SearchHit) []dashboard.DateScore {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, h := range relevant {
		if h.CreatedAt.IsZero() {
			continue
		}
		day := util.DayUTC(h.CreatedAt)
		sums[day] += label.SentimentScore(h.Sentiment)
		counts[day]++
	}

	out := make([]dashboard.DateScore, 0, len(sums))
	for day, sum := range sums {
		out = append(out, dashboard.DateScore{Date: day, Score: sum / float64(counts[day])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func sortDateCounts(counts []dashboard.DateCount) {
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date < counts[j].Date })
}
