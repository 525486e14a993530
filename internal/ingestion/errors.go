package ingestion

import "errors"

var (
	ErrInvalidDate   = errors.New("ingestion: invalid date")
	ErrFetchFailed   = errors.New("ingestion: fetch tweets failed")
	ErrChunkFailed   = errors.New("ingestion: chunking failed")
	ErrUploadFailed  = errors.New("ingestion: upload chunks failed")
	ErrPublishFailed = errors.New("ingestion: publish event failed")
	ErrRecordFailed  = errors.New("ingestion: record run failed")
)
