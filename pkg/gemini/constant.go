package gemini

const (
	// BaseURL is the Generative Language API models endpoint.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when GeminiConfig.Model is empty.
	DefaultModel = "gemini-2.0-flash"

	RoleUser  = "user"
	RoleModel = "model"

	MimeTypeJSON = "application/json"

	ssePrefix = "data:"
	// SSE events carrying a full candidate can exceed bufio's default 64KiB token size.
	maxSSELineSize = 1 << 20
)
