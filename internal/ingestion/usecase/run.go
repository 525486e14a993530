package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tweet-insights-srv/internal/ingestion"
	"tweet-insights-srv/internal/ingestion/repository"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/metrics"
	"tweet-insights-srv/pkg/minio"
	"tweet-insights-srv/pkg/twitter"
	"tweet-insights-srv/pkg/util"
)

const (
	contentTypeJSON = "application/json"
	// endTimeLag keeps end_time behind the request time as recent search requires.
	endTimeLag = 30 * time.Second
)

// runStats are the counters recorded on the run ledger.
type runStats struct {
	Fetched   int
	Relevant  int
	Kept      int
	Chunks    int
	ObjectKey string
}

// Run - one ingestion pass
// Flow: open run → fetch → classify → rank top N → chunk → upload → publish → close run
func (uc *implUseCase) Run(ctx context.Context, input ingestion.RunInput) (ingestion.RunOutput, error) {
	now := uc.now().UTC()
	date := input.Date
	if date == "" {
		date = now.Format(util.DateFormat)
	} else if _, err := util.ParseDateUTC(date); err != nil {
		return ingestion.RunOutput{}, ingestion.ErrInvalidDate
	}

	run, err := uc.repo.CreateRun(ctx, repository.CreateRunOptions{IngestionDate: date, StartedAt: now})
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.Run: CreateRun failed: %v", err)
		return ingestion.RunOutput{}, fmt.Errorf("%w: %v", ingestion.ErrRecordFailed, err)
	}

	stats, runErr := uc.process(ctx, run.ID, date, now)

	finishedAt := uc.now().UTC()
	finish := repository.FinishRunOptions{
		ID:         run.ID,
		Status:     model.IngestionStatusCompleted,
		Fetched:    stats.Fetched,
		Relevant:   stats.Relevant,
		Kept:       stats.Kept,
		Chunks:     stats.Chunks,
		ObjectKey:  stats.ObjectKey,
		FinishedAt: finishedAt,
	}
	if runErr != nil {
		finish.Status = model.IngestionStatusFailed
		finish.Error = runErr.Error()
	}
	if err := uc.repo.FinishRun(ctx, finish); err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.Run: FinishRun failed: %v", err)
		if runErr == nil {
			runErr = fmt.Errorf("%w: %v", ingestion.ErrRecordFailed, err)
		}
	}

	run.Status = finish.Status
	run.Fetched, run.Relevant, run.Kept, run.Chunks = stats.Fetched, stats.Relevant, stats.Kept, stats.Chunks
	run.ObjectKey = stats.ObjectKey
	run.Error = finish.Error
	run.FinishedAt = &finishedAt

	if runErr != nil {
		return ingestion.RunOutput{Run: run}, runErr
	}
	uc.l.Infof(ctx, "ingestion.usecase.Run: run %s done: fetched=%d relevant=%d kept=%d chunks=%d object=%s",
		run.ID, stats.Fetched, stats.Relevant, stats.Kept, stats.Chunks, stats.ObjectKey)
	return ingestion.RunOutput{Run: run}, nil
}

func (uc *implUseCase) process(ctx context.Context, runID, date string, now time.Time) (runStats, error) {
	var stats runStats

	// Step 1: Fetch the last day of tweets
	tweets, err := uc.twitter.SearchRecent(ctx, twitter.SearchRecentInput{
		Query:     uc.cfg.Query,
		StartTime: now.Add(-ingestion.LookbackHours * time.Hour),
		EndTime:   now.Add(-endTimeLag),
		MaxTweets: uc.cfg.MaxTweets,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.process: SearchRecent failed: %v", err)
		return stats, fmt.Errorf("%w: %v", ingestion.ErrFetchFailed, err)
	}
	stats.Fetched = len(tweets)
	metrics.IngestionTweetsTotal.WithLabelValues("fetched").Add(float64(stats.Fetched))

	// Step 2: Classify
	relevant := filterRelevant(tweets)
	stats.Relevant = len(relevant)
	metrics.IngestionTweetsTotal.WithLabelValues("relevant").Add(float64(stats.Relevant))

	// Step 3: Rank
	top := topByPopularity(relevant, uc.cfg.TopN)
	stats.Kept = len(top)
	metrics.IngestionTweetsTotal.WithLabelValues("kept").Add(float64(stats.Kept))

	// Step 4: Chunk
	chunks := buildChunks(top, uc.chunker, date)
	stats.Chunks = len(chunks)
	if len(chunks) == 0 {
		uc.l.Warnf(ctx, "ingestion.usecase.process: no chunks for %s, skipping upload", date)
		return stats, nil
	}

	// Step 5: Upload
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return stats, fmt.Errorf("%w: %v", ingestion.ErrChunkFailed, err)
	}
	objectKey := date + "/" + ingestion.ObjectName
	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.Bucket,
		ObjectName:  objectKey,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: contentTypeJSON,
		Metadata:    map[string]string{"run-id": runID},
	}); err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.process: UploadFile failed: %v", err)
		return stats, fmt.Errorf("%w: %v", ingestion.ErrUploadFailed, err)
	}
	stats.ObjectKey = objectKey

	// Step 6: Hand off to the indexer
	if err := uc.producer.PublishChunksReady(ctx, model.ChunksReadyEvent{
		RunID:         runID,
		ObjectKey:     objectKey,
		Bucket:        uc.cfg.Bucket,
		ChunkCount:    len(chunks),
		IngestionDate: date,
	}); err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.process: PublishChunksReady failed: %v", err)
		return stats, fmt.Errorf("%w: %v", ingestion.ErrPublishFailed, err)
	}
	return stats, nil
}
