package indexing

import "errors"

var (
	ErrInvalidInput       = errors.New("indexing: invalid input")
	ErrFileNotFound       = errors.New("indexing: chunk batch not found")
	ErrFileDownloadFailed = errors.New("indexing: download chunk batch failed")
	ErrFileParseFailed    = errors.New("indexing: parse chunk batch failed")
	ErrEnrichFailed       = errors.New("indexing: enrichment failed")
	ErrEmbedFailed        = errors.New("indexing: embedding failed")
	ErrUpsertFailed       = errors.New("indexing: upsert failed")
)
