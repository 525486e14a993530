package model

import "time"

// TweetChunk is one chunk record produced by the ingestion job and consumed by the indexer.
type TweetChunk struct {
	ID              string    `json:"id"`
	TweetID         string    `json:"tweet_id"`
	Text            string    `json:"text"`
	ChunkIndex      int       `json:"chunk_index"`
	CreatedAt       time.Time `json:"created_at"`
	AuthorID        string    `json:"author_id"`
	Username        string    `json:"username"`
	ConversationID  string    `json:"conversation_id"`
	Language        string    `json:"language"`
	SourceURL       string    `json:"source_url"`
	PopularityScore float64   `json:"popularity_score"`
	LikeCount       int64     `json:"like_count"`
	RetweetCount    int64     `json:"retweet_count"`
	QuoteCount      int64     `json:"quote_count"`
	ReplyCount      int64     `json:"reply_count"`
	IngestionDate   string    `json:"ingestion_date"`
}

// ChunksReadyEvent announces an uploaded chunk batch.
type ChunksReadyEvent struct {
	RunID         string `json:"run_id"`
	ObjectKey     string `json:"object_key"`
	Bucket        string `json:"bucket"`
	ChunkCount    int    `json:"chunk_count"`
	IngestionDate string `json:"ingestion_date"`
}
