package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/scope"
)

// processWithRetry handles msg until it succeeds or fails permanently, backing off between
// attempts. It returns false only when ctx ends first; the message must then stay unmarked.
func (c *consumer) processWithRetry(ctx context.Context, msg *sarama.ConsumerMessage) bool {
	backoff := c.retryBackoff
	for attempt := 1; ; attempt++ {
		err := c.handleChunksReadyMessage(ctx, msg)
		if err == nil {
			return true
		}
		if isPermanent(err) {
			c.l.Errorf(ctx, "indexing.delivery.kafka.consumer.processWithRetry: dropping offset %d/%d: %v",
				msg.Partition, msg.Offset, err)
			return true
		}

		c.l.Warnf(ctx, "indexing.delivery.kafka.consumer.processWithRetry: attempt %d for offset %d/%d failed, retrying in %v: %v",
			attempt, msg.Partition, msg.Offset, backoff, err)
		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, c.maxRetryBackoff)
	}
}

// isPermanent reports errors that another attempt cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, indexing.ErrInvalidInput) ||
		errors.Is(err, indexing.ErrFileNotFound) ||
		errors.Is(err, indexing.ErrFileParseFailed)
}

// handleChunksReadyMessage decodes the event and delegates to the usecase. Malformed events are
// dropped (nil error) so they are not redelivered forever.
func (c *consumer) handleChunksReadyMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	ctx = log.WithTraceID(ctx, fmt.Sprintf("%s-%d-%d", msg.Topic, msg.Partition, msg.Offset))
	c.l.Infof(ctx, "indexing.delivery.kafka.consumer.handleChunksReadyMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message model.ChunksReadyEvent
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "indexing.delivery.kafka.consumer.handleChunksReadyMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	// 2. Validate message (format only)
	if message.Bucket == "" || message.ObjectKey == "" {
		c.l.Warnf(ctx, "indexing.delivery.kafka.consumer.handleChunksReadyMessage: missing bucket or object_key (skipping)")
		return nil
	}

	// 3. System scope for background processing
	ctx = scope.SetScopeToContext(ctx, model.Scope{UserID: "system", Role: "system"})

	// 4. Call UseCase
	output, err := c.uc.Index(ctx, toIndexInput(message))
	if err != nil {
		return fmt.Errorf("usecase Index: %w", err)
	}

	c.l.Infof(ctx, "indexing.delivery.kafka.consumer.handleChunksReadyMessage: run %s indexed: tweets=%d, chunks=%d, failed=%d",
		message.RunID, output.Tweets, output.Chunks, output.Failed)
	return nil
}
