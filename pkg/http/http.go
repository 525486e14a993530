package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, c.client, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	payload, err := marshalBody(body)
	if err != nil {
		return nil, 0, err
	}
	return c.do(ctx, c.client, http.MethodPost, url, payload, headers)
}

// PostStream performs a POST request and hands the response body to the caller.
func (c *clientImpl) PostStream(ctx context.Context, url string, body interface{}, headers map[string]string) (io.ReadCloser, error) {
	payload, err := marshalBody(body)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, c.streamClient, http.MethodPost, url, payload, headers)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	return resp.Body, nil
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal body: %w", err)
	}
	return b, nil
}

func (c *clientImpl) do(ctx context.Context, hc *http.Client, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	resp, err := c.send(ctx, hc, method, url, payload, headers)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// send retries transport errors and 5xx responses. The request is rebuilt per attempt
// because a consumed body cannot be replayed.
func (c *clientImpl) send(ctx context.Context, hc *http.Client, method, url string, payload []byte, headers map[string]string) (*http.Response, error) {
	var (
		resp *http.Response
		err  error
	)
	for i := 0; i <= c.config.Retries; i++ {
		var req *http.Request
		req, err = newRequest(ctx, method, url, payload, headers)
		if err != nil {
			return nil, err
		}
		resp, err = hc.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		if i == c.config.Retries {
			break
		}
		if resp != nil {
			resp.Body.Close()
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.config.RetryWait):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}
	return resp, nil
}

func newRequest(ctx context.Context, method, url string, payload []byte, headers map[string]string) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
