package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tweet-insights-srv/internal/chat"
	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	input  chat.StreamInput
	events []chat.Event
	err    error
}

func (f *fakeUseCase) Stream(_ context.Context, in chat.StreamInput, emit func(chat.Event) error) error {
	f.input = in
	for _, ev := range f.events {
		if err := emit(ev); err != nil {
			return err
		}
	}
	return f.err
}

func serve(t *testing.T, uc chat.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), middleware.Middleware{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func lines(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(strings.NewReader(w.Body.String()))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), sc.Text())
		out = append(out, m)
	}
	return out
}

func TestChat_StreamsNDJSON(t *testing.T) {
	uc := &fakeUseCase{events: []chat.Event{
		{Kind: chat.EventStart},
		{Kind: chat.EventDelta, Content: "Hello "},
		{Kind: chat.EventDelta, Content: "world"},
		{
			Kind:      chat.EventDone,
			Citations: []chat.Citation{{URL: "https://x.com/i/web/status/1", Snippet: "s", Date: "2024-05-01"}},
			FollowUps: []string{"Why?"},
		},
	}}
	w := serve(t, uc, `{"messages":[{"role":"user","content":"hi"}],"context":{"overrides":{}}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeNDJSON, w.Header().Get("Content-Type"))
	assert.Equal(t, []chat.Turn{{Role: "user", Content: "hi"}}, uc.input.Messages)

	got := lines(t, w)
	require.Len(t, got, 4)

	assert.Equal(t, objectChunk, got[0]["object"])
	first := got[0]["choices"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"role": "assistant"}, first["delta"])

	_, hasObject := got[1]["object"]
	assert.False(t, hasObject)
	delta := got[1]["choices"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"content": "Hello "}, delta["delta"])

	last := got[3]["choices"].([]any)[0].(map[string]any)
	assert.Equal(t, "stop", last["finish_reason"])
	ctxObj := last["context"].(map[string]any)
	assert.Equal(t, []any{"Why?"}, ctxObj["followup_questions"])
	points := ctxObj["data_points"].([]any)
	require.Len(t, points, 1)
	assert.Equal(t, "https://x.com/i/web/status/1", points[0].(map[string]any)["url"])
}

func TestChat_ErrorAfterStart(t *testing.T) {
	uc := &fakeUseCase{
		events: []chat.Event{{Kind: chat.EventError, Err: "llm failed"}},
		err:    chat.ErrLLMFailed,
	}
	w := serve(t, uc, `{"messages":[{"role":"user","content":"hi"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	got := lines(t, w)
	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{"error": "llm failed"}, got[0])
}

func TestChat_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
	}{
		{name: "malformed body", body: `{`, code: http.StatusBadRequest},
		{name: "missing messages", body: `{}`, code: http.StatusBadRequest},
		{name: "no messages", body: `{"messages":[]}`, err: chat.ErrNoMessages, code: http.StatusBadRequest},
		{name: "last not user", body: `{"messages":[{"role":"assistant","content":"x"}]}`, err: chat.ErrLastTurnNotUser, code: http.StatusBadRequest},
		{name: "too long", body: `{"messages":[{"role":"user","content":"x"}]}`, err: chat.ErrMessageTooLong, code: http.StatusBadRequest},
		{name: "unexpected", body: `{"messages":[{"role":"user","content":"x"}]}`, err: errors.New("boom"), code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, &fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.NotEqual(t, contentTypeNDJSON, w.Header().Get("Content-Type"))
		})
	}
}
