package http

import (
	"time"

	"tweet-insights-srv/internal/ingestion"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type listRunsReq struct {
	paginator.PaginateQuery
}

func (r listRunsReq) toInput() ingestion.ListRunsInput {
	return ingestion.ListRunsInput{Paginator: r.PaginateQuery}
}

// =====================================================
// Response DTOs
// =====================================================

type runResp struct {
	ID            string     `json:"id"`
	IngestionDate string     `json:"ingestion_date"`
	Status        string     `json:"status"`
	Fetched       int        `json:"fetched"`
	Relevant      int        `json:"relevant"`
	Kept          int        `json:"kept"`
	Chunks        int        `json:"chunks"`
	ObjectKey     string     `json:"object_key,omitempty"`
	Error         string     `json:"error,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

type listRunsResp struct {
	Runs      []runResp                   `json:"runs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newRunResp(r model.IngestionRun) runResp {
	return runResp{
		ID:            r.ID,
		IngestionDate: r.IngestionDate,
		Status:        r.Status,
		Fetched:       r.Fetched,
		Relevant:      r.Relevant,
		Kept:          r.Kept,
		Chunks:        r.Chunks,
		ObjectKey:     r.ObjectKey,
		Error:         r.Error,
		StartedAt:     r.StartedAt,
		FinishedAt:    r.FinishedAt,
	}
}

func (h *handler) newListRunsResp(o ingestion.ListRunsOutput) listRunsResp {
	runs := make([]runResp, len(o.Runs))
	for i, r := range o.Runs {
		runs[i] = newRunResp(r)
	}
	return listRunsResp{
		Runs:      runs,
		Paginator: o.Paginator.ToResponse(),
	}
}
