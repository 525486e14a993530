package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tweet-insights-srv/internal/ingestion"
	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/paginator"
	"tweet-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct{}

func (fakeManager) Verify(token string) (scope.Payload, error) {
	if token != "good" {
		return scope.Payload{}, errors.New("invalid")
	}
	return scope.Payload{UserID: "u1", Username: "ops"}, nil
}

type fakeUseCase struct {
	ingestion.UseCase
	input ingestion.ListRunsInput
	err   error
}

func (f *fakeUseCase) ListRuns(_ context.Context, in ingestion.ListRunsInput) (ingestion.ListRunsOutput, error) {
	f.input = in
	if f.err != nil {
		return ingestion.ListRunsOutput{}, f.err
	}
	q := in.Paginator
	q.Adjust()
	return ingestion.ListRunsOutput{
		Runs: []model.IngestionRun{{
			ID:            "r1",
			IngestionDate: "2024-05-02",
			Status:        model.IngestionStatusCompleted,
			Chunks:        12,
			StartedAt:     time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC),
		}},
		Paginator: paginator.New(q, 1, 1),
	}, nil
}

func serve(t *testing.T, uc ingestion.UseCase, target, token string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), fakeManager{}, nil))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListRuns_RequiresToken(t *testing.T) {
	uc := &fakeUseCase{}
	assert.Equal(t, http.StatusUnauthorized, serve(t, uc, "/api/v1/ingestion/runs", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, uc, "/api/v1/ingestion/runs", "bad").Code)
}

func TestListRuns_OK(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(t, uc, "/api/v1/ingestion/runs?page=2&limit=5", "good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, uc.input.Paginator.Page)
	assert.Equal(t, int64(5), uc.input.Paginator.Limit)

	var body struct {
		Data listRunsResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Runs, 1)
	assert.Equal(t, "r1", body.Data.Runs[0].ID)
	assert.Equal(t, 12, body.Data.Runs[0].Chunks)
	assert.Nil(t, body.Data.Runs[0].FinishedAt)
	assert.Equal(t, int64(1), body.Data.Paginator.Total)
}

func TestListRuns_Errors(t *testing.T) {
	w := serve(t, &fakeUseCase{}, "/api/v1/ingestion/runs?page=x", "good")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, &fakeUseCase{err: errors.New("pg down")}, "/api/v1/ingestion/runs", "good")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
