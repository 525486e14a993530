package usecase

import (
	"sort"

	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/twitter"
)

func scoreTweet(t twitter.Tweet) float64 {
	m := t.PublicMetrics
	return model.PopularityScore(m.LikeCount, m.RetweetCount, m.QuoteCount, m.ReplyCount)
}

// filterRelevant keeps the tweets whose text passes the classifier.
func filterRelevant(tweets []twitter.Tweet) []twitter.Tweet {
	out := make([]twitter.Tweet, 0, len(tweets))
	for _, t := range tweets {
		if IsRelevant(t.Text) {
			out = append(out, t)
		}
	}
	return out
}

// topByPopularity returns the n most popular tweets. Ties keep their fetch order.
func topByPopularity(tweets []twitter.Tweet, n int) []twitter.Tweet {
	out := make([]twitter.Tweet, len(tweets))
	copy(out, tweets)
	sort.SliceStable(out, func(i, j int) bool {
		return scoreTweet(out[i]) > scoreTweet(out[j])
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// buildChunks chunks every tweet into indexer records.
func buildChunks(tweets []twitter.Tweet, chunker *Chunker, date string) []model.TweetChunk {
	chunks := []model.TweetChunk{}
	for _, t := range tweets {
		if t.ID == "" || t.Text == "" {
			continue
		}
		score := scoreTweet(t)
		for i, text := range chunker.Split(t.Text) {
			chunks = append(chunks, model.TweetChunk{
				ID:              ChunkID(t.ID, text),
				TweetID:         t.ID,
				Text:            text,
				ChunkIndex:      i,
				CreatedAt:       t.CreatedAt.UTC(),
				AuthorID:        t.AuthorID,
				Username:        t.Username,
				ConversationID:  t.ConversationID,
				Language:        t.Lang,
				SourceURL:       twitter.StatusURL(t.ID),
				PopularityScore: score,
				LikeCount:       t.PublicMetrics.LikeCount,
				RetweetCount:    t.PublicMetrics.RetweetCount,
				QuoteCount:      t.PublicMetrics.QuoteCount,
				ReplyCount:      t.PublicMetrics.ReplyCount,
				IngestionDate:   date,
			})
		}
	}
	return chunks
}
