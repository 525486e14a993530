package dashboard

import "errors"

var (
	ErrInvalidDateRange = errors.New("dashboard: invalid date range")
	ErrEmbeddingFailed  = errors.New("dashboard: failed to embed relevance query")
	ErrSearchFailed     = errors.New("dashboard: search failed")
)
