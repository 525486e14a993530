package usecase

import (
	"context"
	"fmt"
	"strings"

	"tweet-insights-srv/internal/chat"
	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/util"

	"github.com/qdrant/go-client/qdrant"
)

const retrieveLanguage = "en"

// document is a retrieved chunk.
type document struct {
	Text      string
	SourceURL string
	CreatedAt string
}

func (uc *implUseCase) retrieve(ctx context.Context, query string) ([]document, error) {
	emb, err := uc.embedding.Generate(ctx, embedding.GenerateInput{Text: query, InputType: embedding.InputTypeQuery})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.retrieve: embed query: %v", err)
		return nil, fmt.Errorf("%w: %v", chat.ErrRetrievalFailed, err)
	}

	results, err := uc.point.Search(ctx, point.SearchInput{
		Collection: point.CollectionTweetChunks,
		Vector:     emb.Vector,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{qdrant.NewMatch("language", retrieveLanguage)},
		},
		Limit: uint64(uc.cfg.RetrieveLimit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.retrieve: search chunks: %v", err)
		return nil, fmt.Errorf("%w: %v", chat.ErrRetrievalFailed, err)
	}

	docs := make([]document, len(results))
	for i, r := range results {
		docs[i] = document{
			Text:      model.PayloadString(r.Payload, "text"),
			SourceURL: model.PayloadString(r.Payload, "source_url"),
			CreatedAt: model.PayloadString(r.Payload, "created_at"),
		}
	}
	return docs, nil
}

// buildContext renders the documents as "- text" lines in retrieval order.
func buildContext(docs []document) string {
	lines := make([]string, len(docs))
	for i, d := range docs {
		lines[i] = "- " + d.Text
	}
	return strings.Join(lines, "\n")
}

// citations keeps the documents that have a source URL.
func citations(docs []document) []chat.Citation {
	out := make([]chat.Citation, 0, len(docs))
	for _, d := range docs {
		if d.SourceURL == "" {
			continue
		}
		out = append(out, chat.Citation{
			URL:     d.SourceURL,
			Snippet: util.CollapseWhitespace(d.Text),
			Date:    d.CreatedAt,
		})
	}
	return out
}
