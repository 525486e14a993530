package point

import (
	"tweet-insights-srv/internal/model"

	"github.com/qdrant/go-client/qdrant"
)

type Filter = qdrant.Filter

const (
	// CollectionTweets holds one point per tweet.
	CollectionTweets = "tweets"
	// CollectionTweetChunks holds one point per tweet chunk.
	CollectionTweetChunks = "tweet_chunks"
)

type SearchInput struct {
	Collection     string
	Vector         []float32
	Filter         *Filter
	Limit          uint64
	ScoreThreshold float32
}

type SearchOutput struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}

type UpsertInput struct {
	Collection string
	Points     []model.Point
}

type ScrollInput struct {
	Collection string
	Filter     *Filter
	Limit      uint32
}

type FacetInput struct {
	Collection string
	Key        string
	Filter     *Filter
	Limit      uint64
}

type FacetOutput struct {
	Value string
	Count uint64
}
