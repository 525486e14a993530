package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tweet-insights-srv/internal/middleware"
	"tweet-insights-srv/internal/search"
	"tweet-insights-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	input search.SuggestInput
	out   []string
	err   error
}

func (f *fakeUseCase) Suggest(_ context.Context, in search.SuggestInput) ([]string, error) {
	f.input = in
	return f.out, f.err
}

func serve(t *testing.T, uc search.UseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), middleware.Middleware{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSuggest_OK(t *testing.T) {
	uc := &fakeUseCase{out: []string{"CDC vaccine update"}}
	w := serve(t, uc, "/api/v1/search/suggestions?q=vacc")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vacc", uc.input.Query)

	var body struct {
		Data suggestResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"CDC vaccine update"}, body.Data.Suggestions)
}

func TestSuggest_EmptyListIsArray(t *testing.T) {
	w := serve(t, &fakeUseCase{}, "/api/v1/search/suggestions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"suggestions":[]`)
}

func TestSuggest_Errors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: search.ErrQueryTooLong, code: http.StatusBadRequest},
		{err: search.ErrEmbeddingFailed, code: http.StatusBadGateway},
		{err: search.ErrSearchFailed, code: http.StatusBadGateway},
	}
	for _, tt := range tests {
		w := serve(t, &fakeUseCase{err: tt.err}, "/api/v1/search/suggestions?q=x")
		assert.Equal(t, tt.code, w.Code, tt.err.Error())
	}
}
