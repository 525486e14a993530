package model

import "time"

const (
	IngestionStatusRunning   = "RUNNING"
	IngestionStatusCompleted = "COMPLETED"
	IngestionStatusFailed    = "FAILED"
)

// IngestionRun is one execution of the daily ingestion job.
type IngestionRun struct {
	ID            string
	IngestionDate string
	Status        string
	Fetched       int
	Relevant      int
	Kept          int
	Chunks        int
	ObjectKey     string
	Error         string
	StartedAt     time.Time
	FinishedAt    *time.Time
}
