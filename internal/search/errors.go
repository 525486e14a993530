package search

import "errors"

// Domain errors
var (
	ErrQueryTooLong    = errors.New("search: query too long")
	ErrEmbeddingFailed = errors.New("search: embedding generation failed")
	ErrSearchFailed    = errors.New("search: qdrant search failed")
)
