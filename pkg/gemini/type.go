package gemini

import pkghttp "tweet-insights-srv/pkg/http"

// GeminiConfig holds the configuration for the Gemini client
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// geminiImpl implements IGemini using the Google Gemini API.
type geminiImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient pkghttp.IClient
}

// Message is one turn of a conversation passed to GenerateContent.
type Message struct {
	Role string // RoleUser or RoleModel
	Text string
}

// GenerateRequest is the provider-neutral input for GenerateContent and StreamGenerateContent.
type GenerateRequest struct {
	SystemInstruction string
	Messages          []Message
	Temperature       *float32
	MaxOutputTokens   int
	ResponseMimeType  string
}

// Request defines the request body for Generate Content API
type Request struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// GenerationConfig controls sampling and output format.
type GenerationConfig struct {
	Temperature      *float32 `json:"temperature,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

// Content represents a single content block
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content (text or blob)
type Part struct {
	Text string `json:"text,omitempty"`
}

// Response defines the response body from Generate Content API
type Response struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
	Error         *APIError     `json:"error,omitempty"`
}

// APIError is the error object the API embeds in failed stream events.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Candidate represents a generated candidate
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata represents token usage
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
