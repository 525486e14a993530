package consumer

import (
	"context"
)

// ConsumeChunksReady starts consuming chunk batch events
func (c *consumer) ConsumeChunksReady(ctx context.Context) error {
	handler := &chunksReadyHandler{consumer: c}

	go func() {
		if err := c.group.ConsumeWithContext(ctx, []string{c.topic}, handler); err != nil {
			c.l.Errorf(ctx, "indexing.delivery.kafka.consumer.ConsumeChunksReady: consumer stopped: %v", err)
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			c.l.Errorf(ctx, "indexing.delivery.kafka.consumer.ConsumeChunksReady: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "indexing.delivery.kafka.consumer.ConsumeChunksReady: consuming %s", c.topic)
	return nil
}
