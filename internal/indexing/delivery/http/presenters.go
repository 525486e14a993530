package http

import (
	"strings"
	"time"

	"tweet-insights-srv/internal/indexing"
)

// =====================================================
// Request DTOs
// =====================================================

type indexReq struct {
	RunID         string `json:"run_id"`
	Bucket        string `json:"bucket" binding:"required"`
	ObjectKey     string `json:"object_key" binding:"required"`
	ChunkCount    int    `json:"chunk_count"`
	IngestionDate string `json:"ingestion_date"`
}

func (r indexReq) validate() error {
	if strings.TrimSpace(r.Bucket) == "" || strings.TrimSpace(r.ObjectKey) == "" || r.ChunkCount < 0 {
		return errInvalidBody
	}
	if r.IngestionDate != "" {
		if _, err := time.Parse(time.DateOnly, r.IngestionDate); err != nil {
			return errInvalidIngestionDate
		}
	}
	return nil
}

func (r indexReq) toInput() indexing.IndexInput {
	return indexing.IndexInput{
		RunID:         r.RunID,
		Bucket:        strings.TrimSpace(r.Bucket),
		ObjectKey:     strings.TrimSpace(r.ObjectKey),
		ChunkCount:    r.ChunkCount,
		IngestionDate: r.IngestionDate,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type indexResp struct {
	RunID      string `json:"run_id,omitempty"`
	ObjectKey  string `json:"object_key"`
	Tweets     int    `json:"tweets"`
	Chunks     int    `json:"chunks"`
	Enriched   int    `json:"enriched"`
	Failed     int    `json:"failed"`
	DurationMs int64  `json:"duration_ms"`
}

func (h *handler) newIndexResp(req indexReq, o indexing.IndexOutput) indexResp {
	return indexResp{
		RunID:      req.RunID,
		ObjectKey:  req.ObjectKey,
		Tweets:     o.Tweets,
		Chunks:     o.Chunks,
		Enriched:   o.Enriched,
		Failed:     o.Failed,
		DurationMs: o.Duration.Milliseconds(),
	}
}
