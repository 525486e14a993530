package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// TopicChunksReady carries one event per uploaded chunk batch.
	TopicChunksReady = "tweets.chunks.ready"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	GroupIDChunksReady = "tweet-insights-indexer"
)
