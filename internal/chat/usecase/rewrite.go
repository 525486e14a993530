package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tweet-insights-srv/internal/chat"
	"tweet-insights-srv/pkg/gemini"
	"tweet-insights-srv/pkg/metrics"
)

// noQuery is what the model answers when it cannot produce a search query.
const noQuery = "0"

func toGeminiMessages(turns []chat.Turn) []gemini.Message {
	out := make([]gemini.Message, 0, len(turns))
	for _, t := range turns {
		role := gemini.RoleUser
		if t.Role == chat.RoleAssistant {
			role = gemini.RoleModel
		}
		out = append(out, gemini.Message{Role: role, Text: t.Content})
	}
	return out
}

func buildRewriteRequest(history []chat.Turn, question string, temperature float32, maxTokens int) gemini.GenerateRequest {
	msgs := make([]gemini.Message, 0, 2*len(rewriteFewShots)+len(history)+1)
	for _, shot := range rewriteFewShots {
		msgs = append(msgs,
			gemini.Message{Role: gemini.RoleUser, Text: shot[0]},
			gemini.Message{Role: gemini.RoleModel, Text: shot[1]},
		)
	}
	msgs = append(msgs, toGeminiMessages(history)...)
	msgs = append(msgs, gemini.Message{Role: gemini.RoleUser, Text: rewriteInstruction + question})

	return gemini.GenerateRequest{
		SystemInstruction: rewriteSystemPrompt,
		Messages:          msgs,
		Temperature:       &temperature,
		MaxOutputTokens:   maxTokens,
	}
}

// rewriteQuery asks the model for a search query. An empty or "0" answer falls back to the question.
func (uc *implUseCase) rewriteQuery(ctx context.Context, history []chat.Turn, question string) (string, error) {
	req := buildRewriteRequest(history, question, uc.cfg.RewriteTemperature, uc.cfg.RewriteMaxTokens)

	start := time.Now()
	text, err := uc.gemini.GenerateContent(ctx, req)
	metrics.LLMGenerationDuration.WithLabelValues("rewrite").Observe(time.Since(start).Seconds())
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.rewriteQuery: GenerateContent failed: %v", err)
		return "", fmt.Errorf("%w: %v", chat.ErrRewriteFailed, err)
	}

	query := strings.TrimSpace(text)
	if query == "" || query == noQuery {
		return question, nil
	}
	return query, nil
}
