package dashboard

import "time"

// GetDashboardInput takes YYYY-MM-DD dates. Empty values fall back to the default range.
type GetDashboardInput struct {
	StartDate string
	EndDate   string
}

// FacetKind identifies the payload field a facet bucket was computed on.
type FacetKind int

const (
	FacetUnknown FacetKind = iota
	FacetDate
	FacetSentiment
	FacetLanguage
	FacetEntity
)

var facetFields = map[FacetKind]string{
	FacetDate:      "created_day",
	FacetSentiment: "sentiment",
	FacetLanguage:  "language",
	FacetEntity:    "linked_entities",
}

// Field returns the payload key backing the facet, or "" for FacetUnknown.
func (k FacetKind) Field() string {
	return facetFields[k]
}

func (k FacetKind) String() string {
	if f, ok := facetFields[k]; ok {
		return f
	}
	return "unknown"
}

// FacetKindFromField is the inverse of Field.
func FacetKindFromField(field string) FacetKind {
	for k, f := range facetFields {
		if f == field {
			return k
		}
	}
	return FacetUnknown
}

// FacetKinds lists the kinds requested from the search backend.
var FacetKinds = []FacetKind{FacetDate, FacetSentiment, FacetLanguage, FacetEntity}

type FacetBucket struct {
	Kind  FacetKind
	Value string
	Count int64
}

// FacetSet holds the unfiltered facet counts of the aggregate query.
type FacetSet map[FacetKind][]FacetBucket

// Reconciled is the facet set after discarded hits are subtracted.
type Reconciled struct {
	DateCounts           []DateCount
	SentimentLabelCounts []LabelCount
	LanguageCounts       []LanguageCount
	EntityCounts         []EntityCount
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DateScore struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

type LanguageCount struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

type EntityCount struct {
	Name  string  `json:"name"`
	URL   *string `json:"url"`
	Count int64   `json:"count"`
}

type PopularTweet struct {
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username"`
	SourceURL    string    `json:"source_url"`
	Language     string    `json:"language"`
	LikeCount    int64     `json:"like_count"`
	RetweetCount int64     `json:"retweet_count"`
	QuoteCount   int64     `json:"quote_count"`
	ReplyCount   int64     `json:"reply_count"`
}

// Payload is the assembled dashboard. It is not modified after GetDashboard returns it.
type Payload struct {
	StartDate            string          `json:"start_date"`
	EndDate              string          `json:"end_date"`
	DateCounts           []DateCount     `json:"date_counts"`
	SentimentLabelCounts []LabelCount    `json:"sentiment_label_counts"`
	DateSentimentScores  []DateScore     `json:"date_sentiment_scores"`
	LanguageCounts       []LanguageCount `json:"language_counts"`
	EntityCounts         []EntityCount   `json:"entity_counts"`
	PopularTweets        []PopularTweet  `json:"popular_tweets"`
}
