package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"tweet-insights-srv/internal/model"
)

// PublishChunksReady publishes one event per uploaded batch, keyed by object key.
func (p *implProducer) PublishChunksReady(ctx context.Context, event model.ChunksReadyEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal chunks ready event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.ObjectKey), body); err != nil {
		return fmt.Errorf("failed to publish chunks ready event: %w", err)
	}

	p.l.Infof(ctx, "Published chunks ready for run %s: %s (%d chunks)", event.RunID, event.ObjectKey, event.ChunkCount)
	return nil
}
