package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/pkg/gemini"
	"tweet-insights-srv/pkg/metrics"
)

const enrichSystemPrompt = `You annotate tweets about the U.S. Centers for Disease Control and Prevention.
Return a JSON object with two fields:
- "sentiment": one of "positive", "neutral", "negative" describing the author's attitude.
- "entities": well-known people, organizations, places or topics mentioned in the tweet, each as
  {"name": <canonical English name>, "url": <English Wikipedia URL>}. Use an empty list when there are none.
Only include entities that have an English Wikipedia article.`

const wikipediaPrefix = "https://en.wikipedia.org/wiki/"

var enrichTemperature float32 = 0

// enrich annotates a tweet text with a sentiment label and linked entities.
func (uc *implUseCase) enrich(ctx context.Context, text string) (indexing.Enrichment, error) {
	start := time.Now()
	raw, err := uc.gemini.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: enrichSystemPrompt,
		Messages:          []gemini.Message{{Role: gemini.RoleUser, Text: text}},
		Temperature:       &enrichTemperature,
		ResponseMimeType:  gemini.MimeTypeJSON,
	})
	metrics.LLMGenerationDuration.WithLabelValues("enrich").Observe(time.Since(start).Seconds())
	if err != nil {
		return indexing.Enrichment{}, fmt.Errorf("%w: %v", indexing.ErrEnrichFailed, err)
	}
	return parseEnrichment(raw)
}

// parseEnrichment decodes the model output. Entities without a name are dropped, duplicate names keep
// the first occurrence and URLs outside English Wikipedia are cleared.
func parseEnrichment(raw string) (indexing.Enrichment, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var e indexing.Enrichment
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &e); err != nil {
		return indexing.Enrichment{}, fmt.Errorf("%w: %v", indexing.ErrEnrichFailed, err)
	}

	e.Sentiment = strings.ToLower(strings.TrimSpace(e.Sentiment))
	seen := make(map[string]struct{}, len(e.Entities))
	entities := make([]indexing.LinkedEntity, 0, len(e.Entities))
	for _, ent := range e.Entities {
		name := strings.TrimSpace(ent.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		url := strings.TrimSpace(ent.URL)
		if !strings.HasPrefix(url, wikipediaPrefix) {
			url = ""
		}
		entities = append(entities, indexing.LinkedEntity{Name: name, URL: url})
	}
	e.Entities = entities
	return e, nil
}
