package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ingestionHTTP "tweet-insights-srv/internal/ingestion/delivery/http"
	ingestionPostgre "tweet-insights-srv/internal/ingestion/repository/postgre"
	ingestionUsecase "tweet-insights-srv/internal/ingestion/usecase"
	"tweet-insights-srv/internal/middleware"
)

// setupIngestionDomain exposes the run ledger. Runs themselves are executed by cmd/ingestion,
// so the fetch, upload and publish dependencies stay unset here.
func (srv *HTTPServer) setupIngestionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := ingestionPostgre.New(srv.postgresDB, srv.l)

	uc := ingestionUsecase.New(srv.l, repo, nil, nil, nil, nil, ingestionUsecase.Config{})

	handler := ingestionHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Ingestion domain registered")
	return nil
}
