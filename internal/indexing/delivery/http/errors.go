package http

import (
	"errors"

	"tweet-insights-srv/internal/indexing"
	pkgErrors "tweet-insights-srv/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errInvalidIngestionDate = pkgErrors.NewHTTPError(
		400, "ingestion_date must be YYYY-MM-DD",
	)
	errFileNotFound = pkgErrors.NewHTTPError(
		404, "Chunk batch not found in object storage",
	)
	errFileParseFailed = pkgErrors.NewHTTPError(
		422, "Chunk batch is not a JSON array of chunks",
	)
	errFileDownloadFailed = pkgErrors.NewHTTPError(
		502, "Failed to download chunk batch",
	)
	errIndexIncomplete = pkgErrors.NewHTTPError(
		502, "Some tweets failed to index, retry the batch",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, indexing.ErrInvalidInput):
		return errInvalidBody
	case errors.Is(err, indexing.ErrFileNotFound):
		return errFileNotFound
	case errors.Is(err, indexing.ErrFileParseFailed):
		return errFileParseFailed
	case errors.Is(err, indexing.ErrFileDownloadFailed):
		return errFileDownloadFailed
	case errors.Is(err, indexing.ErrEmbedFailed), errors.Is(err, indexing.ErrUpsertFailed):
		return errIndexIncomplete
	default:
		return err
	}
}
