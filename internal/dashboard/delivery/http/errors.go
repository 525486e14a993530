package http

import (
	"errors"

	"tweet-insights-srv/internal/dashboard"
	pkgErrors "tweet-insights-srv/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errInvalidDateRange = pkgErrors.NewHTTPError(
		400, "Invalid date range: dates must be YYYY-MM-DD and start_date must not be after end_date",
	)
	errEmbeddingFailed = pkgErrors.NewHTTPError(
		502, "Failed to embed relevance query",
	)
	errSearchFailed = pkgErrors.NewHTTPError(
		502, "Search backend failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, dashboard.ErrEmbeddingFailed):
		return errEmbeddingFailed
	case errors.Is(err, dashboard.ErrSearchFailed):
		return errSearchFailed
	default:
		return err
	}
}
