package http

import "tweet-insights-srv/internal/chat"

const (
	objectChunk   = "chat.completion.chunk"
	roleAssistant = "assistant"
)

// =====================================================
// Request DTOs
// =====================================================

type chatReq struct {
	Messages []messageReq   `json:"messages" binding:"required"`
	Context  map[string]any `json:"context,omitempty"`
}

type messageReq struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

func (r chatReq) toInput() chat.StreamInput {
	turns := make([]chat.Turn, len(r.Messages))
	for i, m := range r.Messages {
		turns[i] = chat.Turn{Role: m.Role, Content: m.Content}
	}
	return chat.StreamInput{Messages: turns}
}

// =====================================================
// Response DTOs (one JSON object per line)
// =====================================================

type chunkResp struct {
	Object  string       `json:"object,omitempty"`
	Choices []choiceResp `json:"choices"`
}

type choiceResp struct {
	Index        int          `json:"index"`
	Delta        deltaResp    `json:"delta"`
	Context      *contextResp `json:"context,omitempty"`
	FinishReason string       `json:"finish_reason,omitempty"`
}

type deltaResp struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

type contextResp struct {
	DataPoints        []dataPointResp `json:"data_points"`
	FollowupQuestions []string        `json:"followup_questions"`
}

type dataPointResp struct {
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
}

type errorResp struct {
	Error string `json:"error"`
}

func newChunkResp(ev chat.Event) any {
	switch ev.Kind {
	case chat.EventStart:
		return chunkResp{
			Object:  objectChunk,
			Choices: []choiceResp{{Delta: deltaResp{Role: roleAssistant}}},
		}
	case chat.EventDelta:
		return chunkResp{
			Choices: []choiceResp{{Delta: deltaResp{Content: ev.Content}}},
		}
	case chat.EventDone:
		points := make([]dataPointResp, len(ev.Citations))
		for i, c := range ev.Citations {
			points[i] = dataPointResp{URL: c.URL, Snippet: c.Snippet, Date: c.Date}
		}
		followUps := ev.FollowUps
		if followUps == nil {
			followUps = []string{}
		}
		return chunkResp{
			Object: objectChunk,
			Choices: []choiceResp{{
				Delta:        deltaResp{Role: roleAssistant},
				Context:      &contextResp{DataPoints: points, FollowupQuestions: followUps},
				FinishReason: chat.FinishReasonStop,
			}},
		}
	default:
		return errorResp{Error: ev.Err}
	}
}
