package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"tweet-insights-srv/internal/ingestion/repository"
	"tweet-insights-srv/internal/model"

	"github.com/google/uuid"
)

const runColumns = `id, ingestion_date, status, fetched, relevant, kept, chunks, object_key, error, started_at, finished_at`

// CreateRun - Insert a RUNNING run
func (r *implRepository) CreateRun(ctx context.Context, opt repository.CreateRunOptions) (model.IngestionRun, error) {
	query := `
		INSERT INTO ingestion_runs (id, ingestion_date, status, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + runColumns

	run, err := scanRun(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.IngestionDate, model.IngestionStatusRunning, opt.StartedAt.UTC(),
	))
	if err != nil {
		r.l.Errorf(ctx, "ingestion.repository.postgre.CreateRun: %v", err)
		return model.IngestionRun{}, fmt.Errorf("CreateRun: %w", err)
	}
	return run, nil
}

// FinishRun - Record the final counters and status
func (r *implRepository) FinishRun(ctx context.Context, opt repository.FinishRunOptions) error {
	query := `
		UPDATE ingestion_runs
		SET status = $2, fetched = $3, relevant = $4, kept = $5, chunks = $6,
		    object_key = $7, error = $8, finished_at = $9
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Status, opt.Fetched, opt.Relevant, opt.Kept, opt.Chunks,
		opt.ObjectKey, opt.Error, opt.FinishedAt.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "ingestion.repository.postgre.FinishRun: %v", err)
		return fmt.Errorf("FinishRun: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrRunNotFound
	}
	return nil
}

// ListRuns - Most recent runs first
func (r *implRepository) ListRuns(ctx context.Context, opt repository.ListRunsOptions) ([]model.IngestionRun, error) {
	query, args := buildListRunsQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "ingestion.repository.postgre.ListRuns: %v", err)
		return nil, fmt.Errorf("ListRuns: %w", err)
	}
	defer rows.Close()

	runs := []model.IngestionRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("ListRuns: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRuns: %w", err)
	}
	return runs, nil
}

// CountRuns - Total number of recorded runs
func (r *implRepository) CountRuns(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingestion_runs`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "ingestion.repository.postgre.CountRuns: %v", err)
		return 0, fmt.Errorf("CountRuns: %w", err)
	}
	return total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (model.IngestionRun, error) {
	var run model.IngestionRun
	var objectKey, errMsg sql.NullString
	var finishedAt sql.NullTime

	if err := s.Scan(
		&run.ID, &run.IngestionDate, &run.Status,
		&run.Fetched, &run.Relevant, &run.Kept, &run.Chunks,
		&objectKey, &errMsg, &run.StartedAt, &finishedAt,
	); err != nil {
		return model.IngestionRun{}, err
	}

	run.ObjectKey = objectKey.String
	run.Error = errMsg.String
	if finishedAt.Valid {
		t := finishedAt.Time.UTC()
		run.FinishedAt = &t
	}
	return run, nil
}
