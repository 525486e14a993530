package twitter

import (
	"time"

	pkghttp "tweet-insights-srv/pkg/http"
)

// Config holds the X API credentials.
type Config struct {
	BearerToken string
	BaseURL     string
}

type twitterImpl struct {
	bearerToken string
	baseURL     string
	httpClient  pkghttp.IClient
}

// SearchRecentInput selects tweets from the last seven days.
type SearchRecentInput struct {
	Query     string
	StartTime time.Time
	EndTime   time.Time
	// MaxTweets caps the total across pages. Zero means one page of MaxPageSize.
	MaxTweets int
}

// PublicMetrics are the engagement counters of a tweet.
type PublicMetrics struct {
	RetweetCount int64 `json:"retweet_count"`
	ReplyCount   int64 `json:"reply_count"`
	LikeCount    int64 `json:"like_count"`
	QuoteCount   int64 `json:"quote_count"`
}

// Tweet is a recent-search result with its author's username resolved.
type Tweet struct {
	ID             string        `json:"id"`
	Text           string        `json:"text"`
	CreatedAt      time.Time     `json:"created_at"`
	AuthorID       string        `json:"author_id"`
	ConversationID string        `json:"conversation_id"`
	Lang           string        `json:"lang"`
	PublicMetrics  PublicMetrics `json:"public_metrics"`
	Username       string        `json:"-"`
}

type user struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type searchResponse struct {
	Data     []Tweet `json:"data"`
	Includes struct {
		Users []user `json:"users"`
	} `json:"includes"`
	Meta struct {
		ResultCount int    `json:"result_count"`
		NextToken   string `json:"next_token"`
	} `json:"meta"`
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
