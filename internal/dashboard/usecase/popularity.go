package usecase

import (
	"sort"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/label"
	"tweet-insights-srv/internal/model"
)

// PopularityScore weighs the engagement counters of a tweet.
func PopularityScore(t dashboard.PopularTweet) float64 {
	return model.PopularityScore(t.LikeCount, t.RetweetCount, t.QuoteCount, t.ReplyCount)
}

// RankByPopularity returns a copy of tweets sorted by descending popularity.
// Ties keep their input order.
func RankByPopularity(tweets []dashboard.PopularTweet) []dashboard.PopularTweet {
	out := make([]dashboard.PopularTweet, len(tweets))
	copy(out, tweets)
	sort.SliceStable(out, func(i, j int) bool {
		return PopularityScore(out[i]) > PopularityScore(out[j])
	})
	return out
}

func toPopularTweet(h model.SearchHit) dashboard.PopularTweet {
	return dashboard.PopularTweet{
		Text:         h.Text,
		CreatedAt:    h.CreatedAt,
		Username:     h.Username,
		SourceURL:    h.SourceURL,
		Language:     label.Language(h.Language),
		LikeCount:    h.LikeCount,
		RetweetCount: h.RetweetCount,
		QuoteCount:   h.QuoteCount,
		ReplyCount:   h.ReplyCount,
	}
}
