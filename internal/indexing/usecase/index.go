package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/metrics"
	"tweet-insights-srv/pkg/minio"
)

// Index - Index one chunk batch from MinIO
// Flow: download → parse → group by tweet → (enrich → embed → upsert) per tweet in parallel
func (uc *implUseCase) Index(ctx context.Context, input indexing.IndexInput) (indexing.IndexOutput, error) {
	startTime := time.Now()

	if input.Bucket == "" || input.ObjectKey == "" {
		return indexing.IndexOutput{}, indexing.ErrInvalidInput
	}

	// Step 1: Download
	reader, err := uc.storage.DownloadFile(ctx, &minio.DownloadRequest{
		BucketName: input.Bucket,
		ObjectName: input.ObjectKey,
	})
	if err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.Index: Failed to download %s/%s: %v", input.Bucket, input.ObjectKey, err)
		if minio.IsNotFound(err) {
			return indexing.IndexOutput{}, fmt.Errorf("%w: %v", indexing.ErrFileNotFound, err)
		}
		return indexing.IndexOutput{}, fmt.Errorf("%w: %v", indexing.ErrFileDownloadFailed, err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.Index: Failed to read %s/%s: %v", input.Bucket, input.ObjectKey, err)
		return indexing.IndexOutput{}, fmt.Errorf("%w: %v", indexing.ErrFileDownloadFailed, err)
	}

	// Step 2: Parse JSON array of chunk records
	var chunks []model.TweetChunk
	if err := json.Unmarshal(body, &chunks); err != nil {
		uc.l.Errorf(ctx, "indexing.usecase.Index: Failed to parse %s: %v", input.ObjectKey, err)
		return indexing.IndexOutput{}, fmt.Errorf("%w: %v", indexing.ErrFileParseFailed, err)
	}
	if input.ChunkCount > 0 && input.ChunkCount != len(chunks) {
		uc.l.Warnf(ctx, "indexing.usecase.Index: %s announced %d chunks, found %d",
			input.ObjectKey, input.ChunkCount, len(chunks))
	}

	// Step 3: Group + process in parallel
	groups := groupByTweet(chunks)
	output, firstErr := uc.processGroups(ctx, groups)
	output.Duration = time.Since(startTime)

	uc.l.Infof(ctx, "indexing.usecase.Index: run=%s object=%s tweets=%d chunks=%d enriched=%d failed=%d duration=%v",
		input.RunID, input.ObjectKey, output.Tweets, output.Chunks, output.Enriched, output.Failed, output.Duration)

	// Point IDs are deterministic, so the whole batch can be indexed again.
	if output.Failed > 0 {
		return output, fmt.Errorf("%d of %d tweets failed: %w", output.Failed, len(groups), firstErr)
	}
	return output, nil
}

// processGroups indexes every tweet with bounded concurrency. A failing tweet is counted and the
// rest of the batch still runs; the first failure is returned with the counters.
func (uc *implUseCase) processGroups(ctx context.Context, groups []tweetGroup) (indexing.IndexOutput, error) {
	var (
		mu       sync.Mutex
		out      indexing.IndexOutput
		firstErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Concurrency)

	for i := range groups {
		group := groups[i]
		g.Go(func() error {
			enriched, err := uc.indexGroup(gctx, group)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Errorf(gctx, "indexing.usecase.processGroups: tweet %s failed: %v", group.TweetID, err)
				out.Failed++
				if firstErr == nil {
					firstErr = err
				}
				return nil
			}
			out.Tweets++
			out.Chunks += len(group.Chunks)
			if enriched {
				out.Enriched++
			}
			return nil
		})
	}
	_ = g.Wait()
	return out, firstErr
}

// indexGroup enriches, embeds and upserts one tweet and its chunks.
func (uc *implUseCase) indexGroup(ctx context.Context, group tweetGroup) (bool, error) {
	text := group.Text()

	// Enrichment is best effort; read paths apply defaults to missing fields.
	enrichment, err := uc.enrich(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "indexing.usecase.indexGroup: tweet %s not enriched: %v", group.TweetID, err)
		enrichment = indexing.Enrichment{}
	}
	enriched := err == nil

	texts := make([]string, 0, len(group.Chunks)+1)
	texts = append(texts, text)
	for _, c := range group.Chunks {
		texts = append(texts, c.Text)
	}
	emb, err := uc.embeddingUC.GenerateMany(ctx, embedding.GenerateManyInput{
		Texts:     texts,
		InputType: embedding.InputTypeDocument,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", indexing.ErrEmbedFailed, err)
	}
	if len(emb.Vectors) != len(texts) {
		return false, fmt.Errorf("%w: got %d vectors for %d texts", indexing.ErrEmbedFailed, len(emb.Vectors), len(texts))
	}

	chunkPoints := make([]model.Point, len(group.Chunks))
	for i, c := range group.Chunks {
		chunkPoints[i] = model.Point{
			ID:      PointID(c.ID),
			Vector:  emb.Vectors[i+1],
			Payload: chunkPayload(c),
		}
	}
	if err := uc.pointUC.Upsert(ctx, point.UpsertInput{
		Collection: point.CollectionTweetChunks,
		Points:     chunkPoints,
	}); err != nil {
		return false, fmt.Errorf("%w: %v", indexing.ErrUpsertFailed, err)
	}
	metrics.IndexedPointsTotal.WithLabelValues(point.CollectionTweetChunks).Add(float64(len(chunkPoints)))

	if err := uc.pointUC.Upsert(ctx, point.UpsertInput{
		Collection: point.CollectionTweets,
		Points: []model.Point{{
			ID:      PointID(group.TweetID),
			Vector:  emb.Vectors[0],
			Payload: tweetPayload(group, enrichment),
		}},
	}); err != nil {
		return false, fmt.Errorf("%w: %v", indexing.ErrUpsertFailed, err)
	}
	metrics.IndexedPointsTotal.WithLabelValues(point.CollectionTweets).Inc()

	return enriched, nil
}
