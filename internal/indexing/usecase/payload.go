package usecase

import (
	"sort"
	"strings"
	"time"

	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/util"

	"github.com/google/uuid"
)

// pointNamespace scopes the name-based point IDs of this service.
var pointNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tweet-insights-srv/points"))

// PointID maps a tweet or chunk ID to a stable Qdrant point ID.
func PointID(id string) string {
	return uuid.NewSHA1(pointNamespace, []byte(id)).String()
}

// tweetGroup is a tweet with its chunks in chunk order.
type tweetGroup struct {
	TweetID string
	Chunks  []model.TweetChunk
}

// Text rebuilds the tweet text from its chunks.
func (g tweetGroup) Text() string {
	parts := make([]string, len(g.Chunks))
	for i, c := range g.Chunks {
		parts[i] = c.Text
	}
	return strings.Join(parts, " ")
}

// groupByTweet groups chunks per tweet. Groups keep the order in which tweets first appear.
func groupByTweet(chunks []model.TweetChunk) []tweetGroup {
	index := make(map[string]int)
	var groups []tweetGroup
	for _, c := range chunks {
		if c.TweetID == "" || c.ID == "" {
			continue
		}
		i, ok := index[c.TweetID]
		if !ok {
			i = len(groups)
			index[c.TweetID] = i
			groups = append(groups, tweetGroup{TweetID: c.TweetID})
		}
		groups[i].Chunks = append(groups[i].Chunks, c)
	}
	for i := range groups {
		sort.SliceStable(groups[i].Chunks, func(a, b int) bool {
			return groups[i].Chunks[a].ChunkIndex < groups[i].Chunks[b].ChunkIndex
		})
	}
	return groups
}

func counters(payload map[string]interface{}, c model.TweetChunk) {
	payload["like_count"] = c.LikeCount
	payload["retweet_count"] = c.RetweetCount
	payload["quote_count"] = c.QuoteCount
	payload["reply_count"] = c.ReplyCount
	payload["popularity_score"] = c.PopularityScore
}

// tweetPayload is the payload of a tweets point. Enrichment fields are omitted when empty.
func tweetPayload(g tweetGroup, e indexing.Enrichment) map[string]interface{} {
	first := g.Chunks[0]
	created := first.CreatedAt.UTC()
	payload := map[string]interface{}{
		"tweet_id":        g.TweetID,
		"text":            g.Text(),
		"created_at":      created.Format(time.RFC3339),
		"created_ts":      created.Unix(),
		"created_day":     util.DayUTC(created),
		"language":        first.Language,
		"username":        first.Username,
		"author_id":       first.AuthorID,
		"conversation_id": first.ConversationID,
		"source_url":      first.SourceURL,
		"ingestion_date":  first.IngestionDate,
	}
	counters(payload, first)

	if e.Sentiment != "" {
		payload["sentiment"] = e.Sentiment
	}
	if len(e.Entities) > 0 {
		names := make([]interface{}, len(e.Entities))
		urls := make([]interface{}, len(e.Entities))
		for i, ent := range e.Entities {
			names[i] = ent.Name
			urls[i] = ent.URL
		}
		payload["linked_entities"] = names
		payload["linked_entity_urls"] = urls
	}
	return payload
}

// chunkPayload is the payload of a tweet_chunks point.
func chunkPayload(c model.TweetChunk) map[string]interface{} {
	payload := map[string]interface{}{
		"chunk_id":        c.ID,
		"tweet_id":        c.TweetID,
		"text":            c.Text,
		"chunk_index":     int64(c.ChunkIndex),
		"created_at":      c.CreatedAt.UTC().Format(time.RFC3339),
		"author_id":       c.AuthorID,
		"username":        c.Username,
		"conversation_id": c.ConversationID,
		"language":        c.Language,
		"source_url":      c.SourceURL,
		"ingestion_date":  c.IngestionDate,
	}
	counters(payload, c)
	return payload
}
