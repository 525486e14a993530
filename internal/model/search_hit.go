package model

import (
	"math"
	"strconv"
	"time"

	"tweet-insights-srv/pkg/util"
)

// SearchHit is one document returned by a dashboard or chat query.
type SearchHit struct {
	ID               string
	CreatedAt        time.Time
	Sentiment        string
	Language         string
	Text             string
	SourceURL        string
	Username         string
	LikeCount        int64
	RetweetCount     int64
	QuoteCount       int64
	ReplyCount       int64
	LinkedEntities   []string
	LinkedEntityURLs []string
	// Score is nil when the backend returned no relevance score.
	Score *float32
}

// SearchHitFromPayload builds a SearchHit from a tweets/tweet_chunks point payload.
// Missing or mistyped fields are left at their zero value.
func SearchHitFromPayload(id string, payload map[string]interface{}, score *float32) SearchHit {
	return SearchHit{
		ID:               id,
		CreatedAt:        PayloadTime(payload, "created_at"),
		Sentiment:        PayloadString(payload, "sentiment"),
		Language:         PayloadString(payload, "language"),
		Text:             PayloadString(payload, "text"),
		SourceURL:        PayloadString(payload, "source_url"),
		Username:         PayloadString(payload, "username"),
		LikeCount:        PayloadInt64(payload, "like_count"),
		RetweetCount:     PayloadInt64(payload, "retweet_count"),
		QuoteCount:       PayloadInt64(payload, "quote_count"),
		ReplyCount:       PayloadInt64(payload, "reply_count"),
		LinkedEntities:   PayloadStrings(payload, "linked_entities"),
		LinkedEntityURLs: PayloadStrings(payload, "linked_entity_urls"),
		Score:            score,
	}
}

func PayloadString(payload map[string]interface{}, key string) string {
	s, _ := payload[key].(string)
	return s
}

func PayloadInt64(payload map[string]interface{}, key string) int64 {
	switch v := payload[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(math.Round(v))
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

func PayloadStrings(payload map[string]interface{}, key string) []string {
	switch v := payload[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// PayloadTime parses an RFC3339 timestamp field. It returns the zero time when missing.
func PayloadTime(payload map[string]interface{}, key string) time.Time {
	s, _ := payload[key].(string)
	t := util.ParseTimestamp(s)
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
