package indexing

import "time"

type IndexInput struct {
	RunID         string
	Bucket        string
	ObjectKey     string
	ChunkCount    int
	IngestionDate string
}

type IndexOutput struct {
	Tweets   int
	Chunks   int
	Enriched int
	Failed   int
	Duration time.Duration
}

// LinkedEntity is a named entity resolved to a reference page.
type LinkedEntity struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Enrichment is the model-derived annotation of a tweet. The zero value means "not enriched".
type Enrichment struct {
	Sentiment string         `json:"sentiment"`
	Entities  []LinkedEntity `json:"entities"`
}
