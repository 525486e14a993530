package voyage

const (
	// Endpoint is the Voyage AI embeddings endpoint.
	Endpoint = "https://api.voyageai.com/v1/embeddings"
	// Model is the default embedding model. It produces Dimension-sized vectors.
	Model     = "voyage-3"
	Dimension = 1024

	InputTypeQuery    = "query"
	InputTypeDocument = "document"

	// MaxBatchSize is the largest input list accepted per request.
	MaxBatchSize = 128
)
