package producer

import (
	"tweet-insights-srv/internal/ingestion"
	pkgKafka "tweet-insights-srv/pkg/kafka"
	"tweet-insights-srv/pkg/log"
)

// Producer interface for ingestion domain
type Producer interface {
	ingestion.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new ingestion producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
