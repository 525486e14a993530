package consumer

import (
	"github.com/IBM/sarama"
)

type chunksReadyHandler struct {
	consumer *consumer
}

func (h *chunksReadyHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *chunksReadyHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim handles messages in offset order. A message is marked only once it is indexed or
// known to be unprocessable; transient failures are retried in place so later offsets never
// commit past an unindexed batch.
func (h *chunksReadyHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if !h.consumer.processWithRetry(ctx, msg) {
				return nil
			}
			session.MarkMessage(msg, "")
		case <-ctx.Done():
			return nil
		}
	}
}
