package postgre

import (
	"database/sql"

	"tweet-insights-srv/internal/ingestion/repository"
	"tweet-insights-srv/pkg/log"
)

// implRepository implements repository.Repository on the ingestion_runs table
type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL repository for the ingestion run ledger
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
