package ingestion

import (
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/paginator"
)

const (
	// ObjectName is the per-day object holding the chunk batch.
	ObjectName = "cdc-chunks.json"
	// LookbackHours is the recent-search window ending at run time.
	LookbackHours = 24
)

type RunInput struct {
	// Date is the ingestion date (YYYY-MM-DD). Empty means today in UTC.
	Date string
}

type RunOutput struct {
	Run model.IngestionRun
}

type ListRunsInput struct {
	Paginator paginator.PaginateQuery
}

type ListRunsOutput struct {
	Runs      []model.IngestionRun
	Paginator paginator.Paginator
}
