package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate generates content based on the prompt.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateContent(ctx, GenerateRequest{
		Messages: []Message{{Role: RoleUser, Text: prompt}},
	})
}

// GenerateContent runs a non-streaming completion.
func (g *geminiImpl) GenerateContent(ctx context.Context, in GenerateRequest) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	body, statusCode, err := g.httpClient.Post(ctx, url, buildRequest(in), nil)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return candidateText(resp), nil
}

// StreamGenerateContent consumes the server-sent-events variant of generateContent.
func (g *geminiImpl) StreamGenerateContent(ctx context.Context, in GenerateRequest, onDelta func(text string) error) error {
	url := fmt.Sprintf("%s/%s:streamGenerateContent?alt=sse&key=%s", g.baseURL, g.model, g.apiKey)

	stream, err := g.httpClient.PostStream(ctx, url, buildRequest(in), nil)
	if err != nil {
		return fmt.Errorf("failed to call Gemini stream API: %w", err)
	}
	defer stream.Close()

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), maxSSELineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if !bytes.HasPrefix(line, []byte(ssePrefix)) {
			continue
		}
		data := bytes.TrimSpace(line[len(ssePrefix):])
		if len(data) == 0 {
			continue
		}

		var resp Response
		if err := json.Unmarshal(data, &resp); err != nil {
			return fmt.Errorf("failed to unmarshal Gemini stream event: %w", err)
		}
		if resp.Error != nil {
			return fmt.Errorf("Gemini stream error %d: %s", resp.Error.Code, resp.Error.Message)
		}

		text := candidateText(resp)
		if text == "" {
			continue
		}
		if err := onDelta(text); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read Gemini stream: %w", err)
	}
	return ctx.Err()
}

func buildRequest(in GenerateRequest) Request {
	req := Request{Contents: make([]Content, 0, len(in.Messages))}
	for _, m := range in.Messages {
		role := m.Role
		if role == "" {
			role = RoleUser
		}
		req.Contents = append(req.Contents, Content{Role: role, Parts: []Part{{Text: m.Text}}})
	}
	if in.SystemInstruction != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: in.SystemInstruction}}}
	}
	if in.Temperature != nil || in.MaxOutputTokens > 0 || in.ResponseMimeType != "" {
		req.GenerationConfig = &GenerationConfig{
			Temperature:      in.Temperature,
			MaxOutputTokens:  in.MaxOutputTokens,
			ResponseMimeType: in.ResponseMimeType,
		}
	}
	return req
}

func candidateText(resp Response) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}
