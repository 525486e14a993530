package repository

import "time"

// CreateRunOptions - Options for CreateRun
type CreateRunOptions struct {
	IngestionDate string
	StartedAt     time.Time
}

// FinishRunOptions - Options for FinishRun
type FinishRunOptions struct {
	ID         string
	Status     string
	Fetched    int
	Relevant   int
	Kept       int
	Chunks     int
	ObjectKey  string
	Error      string
	FinishedAt time.Time
}

// ListRunsOptions - Options for ListRuns (most recent first)
type ListRunsOptions struct {
	Limit  int64
	Offset int64
}
