package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceKey = "ingestion:s3cret"

type fakeUseCase struct {
	calls  int
	input  indexing.IndexInput
	caller string
	out    indexing.IndexOutput
	err    error
}

func (f *fakeUseCase) Index(ctx context.Context, in indexing.IndexInput) (indexing.IndexOutput, error) {
	f.calls++
	f.input = in
	f.caller = scope.GetScopeFromContext(ctx).UserID
	return f.out, f.err
}

func serve(t *testing.T, uc indexing.UseCase, body, key string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), nil, map[string]string{"ingestion": "s3cret"})
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), mw)

	req := httptest.NewRequest(http.MethodPost, "/internal/index", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(middleware.HeaderServiceKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndex_RequiresServiceKey(t *testing.T) {
	uc := &fakeUseCase{}
	body := `{"bucket":"cdc-tweets","object_key":"2024-05-02/cdc-chunks.json"}`

	assert.Equal(t, http.StatusUnauthorized, serve(t, uc, body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, uc, body, "ingestion:wrong").Code)
	assert.Zero(t, uc.calls)
}

func TestIndex_OK(t *testing.T) {
	uc := &fakeUseCase{out: indexing.IndexOutput{Tweets: 3, Chunks: 7, Enriched: 2, Duration: 1500 * time.Millisecond}}

	w := serve(t, uc, `{"run_id":"r1","bucket":"cdc-tweets","object_key":"2024-05-02/cdc-chunks.json",
		"chunk_count":7,"ingestion_date":"2024-05-02"}`, serviceKey)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, indexing.IndexInput{
		RunID:         "r1",
		Bucket:        "cdc-tweets",
		ObjectKey:     "2024-05-02/cdc-chunks.json",
		ChunkCount:    7,
		IngestionDate: "2024-05-02",
	}, uc.input)
	assert.Equal(t, "ingestion", uc.caller)

	var body struct {
		Data indexResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, indexResp{
		RunID:      "r1",
		ObjectKey:  "2024-05-02/cdc-chunks.json",
		Tweets:     3,
		Chunks:     7,
		Enriched:   2,
		DurationMs: 1500,
	}, body.Data)
}

func TestIndex_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "missing object_key", body: `{"bucket":"cdc-tweets"}`},
		{name: "blank bucket", body: `{"bucket":"  ","object_key":"k"}`},
		{name: "bad date", body: `{"bucket":"b","object_key":"k","ingestion_date":"05/02/2024"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			w := serve(t, uc, tt.body, serviceKey)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, uc.calls)
		})
	}
}

func TestIndex_MapsUseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: fmt.Errorf("%w: no such key", indexing.ErrFileNotFound), code: http.StatusNotFound},
		{err: fmt.Errorf("%w: eof", indexing.ErrFileParseFailed), code: http.StatusUnprocessableEntity},
		{err: fmt.Errorf("%w: timeout", indexing.ErrFileDownloadFailed), code: http.StatusBadGateway},
		{err: fmt.Errorf("1 of 2 tweets failed: %w", indexing.ErrUpsertFailed), code: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			w := serve(t, uc, `{"bucket":"b","object_key":"k"}`, serviceKey)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
