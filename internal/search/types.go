package search

const (
	// MaxSuggestions caps the suggestion list.
	MaxSuggestions = 5
	MaxQueryLength = 200
)

type SuggestInput struct {
	Query string
}
