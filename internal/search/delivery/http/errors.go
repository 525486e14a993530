package http

import (
	"errors"

	"tweet-insights-srv/internal/search"
	pkgErrors "tweet-insights-srv/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errQueryTooLong = pkgErrors.NewHTTPError(
		400, "Query too long (max 200 characters)",
	)
	errEmbeddingFailed = pkgErrors.NewHTTPError(
		502, "Failed to generate query embedding",
	)
	errSearchFailed = pkgErrors.NewHTTPError(
		502, "Search failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrQueryTooLong):
		return errQueryTooLong
	case errors.Is(err, search.ErrEmbeddingFailed):
		return errEmbeddingFailed
	case errors.Is(err, search.ErrSearchFailed):
		return errSearchFailed
	default:
		return err
	}
}
