package voyage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Embed generates embeddings for the given texts. Inputs larger than MaxBatchSize are split
// into several requests.
func (v *voyageImpl) Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if v.apiKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: at least one text is required")
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += MaxBatchSize {
		end := start + MaxBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := v.embedBatch(ctx, texts[start:end], inputType)
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (v *voyageImpl) embedBatch(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	req := Request{
		Input:     texts,
		Model:     v.model,
		InputType: inputType,
	}

	headers := map[string]string{"Authorization": "Bearer " + v.apiKey}

	body, statusCode, err := v.httpClient.Post(ctx, v.endpoint, req, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call Voyage API: %w", err)
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("Voyage API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Voyage response: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("voyage: expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	embeddings := make([][]float32, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(texts) {
			return nil, fmt.Errorf("voyage: embedding index %d out of range", item.Index)
		}
		embeddings[item.Index] = item.Embedding
	}

	return embeddings, nil
}
