package http

import (
	"context"
	"io"
)

// IClient defines the interface for HTTP client with retry and timeout.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
	// PostStream sends a JSON body and returns the open response body on 2xx.
	// The caller must close it. Non-2xx responses are drained and returned as *StatusError.
	PostStream(ctx context.Context, url string, body interface{}, headers map[string]string) (io.ReadCloser, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		client:       defaultHTTPClient(cfg.Timeout),
		streamClient: defaultHTTPClient(0),
		config:       cfg,
	}
}
