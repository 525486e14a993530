package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 3

	// ConsumerInitialOffset applies to a group with no committed offset.
	ConsumerInitialOffset = sarama.OffsetOldest
)

// KafkaVersion is the minimum broker protocol version.
var KafkaVersion = sarama.V2_6_0_0
