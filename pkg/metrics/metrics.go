package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	DashboardBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_build_seconds",
		Help:    "Time spent building an uncached dashboard payload.",
		Buckets: prometheus.DefBuckets,
	})

	CacheRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_requests_total",
		Help: "Memo cache lookups by cache name and result (hit, miss, error).",
	}, []string{"cache", "result"})

	ChatStreamsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_streams_total",
		Help: "Chat streams by terminal state.",
	}, []string{"outcome"})

	LLMGenerationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "llm_generation_duration_seconds",
		Help:    "LLM call latency by operation.",
		Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"operation"})

	IngestionTweetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingestion_tweets_total",
		Help: "Tweets seen by the ingestion job by stage (fetched, relevant, kept).",
	}, []string{"stage"})

	IndexedPointsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "indexed_points_total",
		Help: "Points upserted by collection.",
	}, []string{"collection"})
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// MustRegister registers every collector on registerer.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		HTTPRequestDuration,
		DashboardBuildSeconds,
		CacheRequestsTotal,
		ChatStreamsTotal,
		LLMGenerationDuration,
		IngestionTweetsTotal,
		IndexedPointsTotal,
	)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes Handler on addr for processes without an HTTP API. It returns when ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
