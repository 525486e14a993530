package consumer

import (
	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/model"
)

// toIndexInput maps the Kafka event to usecase input (delivery → usecase boundary).
func toIndexInput(m model.ChunksReadyEvent) indexing.IndexInput {
	return indexing.IndexInput{
		RunID:         m.RunID,
		Bucket:        m.Bucket,
		ObjectKey:     m.ObjectKey,
		ChunkCount:    m.ChunkCount,
		IngestionDate: m.IngestionDate,
	}
}
