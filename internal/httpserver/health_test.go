package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/qdrant"
	pkgRedis "tweet-insights-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeQdrant only answers Ping; any other call panics on the nil embedded interface.
type fakeQdrant struct {
	qdrant.IQdrant
	pingErr error
}

func (f fakeQdrant) Ping(context.Context) error { return f.pingErr }

func newOpsServer(t *testing.T, qdrantErr error) (*HTTPServer, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	srv := &HTTPServer{
		gin:          gin.New(),
		l:            log.NewNop(),
		redisClient:  pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()})),
		qdrantClient: fakeQdrant{pingErr: qdrantErr},
	}
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	return srv, mr
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthAndLive(t *testing.T) {
	srv, _ := newOpsServer(t, nil)

	for _, path := range []string{"/health", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, ServiceName, body.Data["service"])
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestReadyCheck(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		srv, _ := newOpsServer(t, nil)
		assert.Equal(t, http.StatusOK, get(srv, "/ready").Code)
	})

	t.Run("qdrant down", func(t *testing.T) {
		srv, _ := newOpsServer(t, errors.New("unavailable"))
		w := get(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Qdrant")
	})

	t.Run("redis down", func(t *testing.T) {
		srv, mr := newOpsServer(t, nil)
		mr.Close()
		w := get(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Redis")
	})
}

func TestMetricsRoute(t *testing.T) {
	srv, _ := newOpsServer(t, nil)
	w := get(srv, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}
