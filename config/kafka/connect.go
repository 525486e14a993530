package kafka

import (
	"fmt"

	"tweet-insights-srv/config"
	"tweet-insights-srv/pkg/kafka"
)

// ConnectProducer creates a producer bound to the configured topic.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	p, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}
	return p, nil
}

// ConnectConsumer creates a consumer group member for the configured group id.
func ConnectConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	c, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka consumer: %w", err)
	}
	return c, nil
}
