package consumer

import (
	"context"
	"fmt"
	"time"

	"tweet-insights-srv/internal/indexing"
	kafkaDelivery "tweet-insights-srv/internal/indexing/delivery/kafka"
	pkgKafka "tweet-insights-srv/pkg/kafka"
	"tweet-insights-srv/pkg/log"
)

// Consumer consumes indexing events
type Consumer interface {
	// ConsumeChunksReady starts consuming in the background until ctx is cancelled.
	ConsumeChunksReady(ctx context.Context) error
	Close() error
}

const (
	defaultRetryBackoff    = time.Second
	defaultMaxRetryBackoff = 30 * time.Second
)

// Config holds the configuration for indexing consumer
type Config struct {
	Logger  log.Logger
	Topic   string
	Group   pkgKafka.IConsumer
	UseCase indexing.UseCase
}

type consumer struct {
	l     log.Logger
	topic string
	group pkgKafka.IConsumer
	uc    indexing.UseCase

	retryBackoff    time.Duration
	maxRetryBackoff time.Duration
}

// New creates a new indexing consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Group == nil {
		return nil, fmt.Errorf("consumer group is required")
	}
	if cfg.Topic == "" {
		cfg.Topic = kafkaDelivery.TopicChunksReady
	}

	return &consumer{
		l:     cfg.Logger,
		topic: cfg.Topic,
		group: cfg.Group,
		uc:    cfg.UseCase,

		retryBackoff:    defaultRetryBackoff,
		maxRetryBackoff: defaultMaxRetryBackoff,
	}, nil
}

// Close closes the consumer group
func (c *consumer) Close() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close chunks ready group: %w", err)
	}
	return nil
}
