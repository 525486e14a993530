package voyage

import pkghttp "tweet-insights-srv/pkg/http"

// VoyageConfig holds the Voyage client configuration.
type VoyageConfig struct {
	APIKey   string
	Model    string
	Endpoint string
}

type voyageImpl struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient pkghttp.IClient
}

// Request defines the request body for Embedding API
type Request struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

// Response defines the response body from Embedding API
type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding represents a single embedding object
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// Usage represents token usage
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}
