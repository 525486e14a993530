package postgre

import (
	"fmt"

	"tweet-insights-srv/internal/ingestion/repository"
)

// buildListRunsQuery - Build query for ListRuns
func buildListRunsQuery(opt repository.ListRunsOptions) (string, []any) {
	query := `SELECT ` + runColumns + ` FROM ingestion_runs ORDER BY started_at DESC`
	args := []any{}

	// Pagination
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}
