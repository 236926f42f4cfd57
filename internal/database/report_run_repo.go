package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

type reportRunRepo struct {
	db dbConn
}

func newReportRunRepo(db dbConn) contract.ReportRunRepo {
	return &reportRunRepo{db: db}
}

func (r *reportRunRepo) Create(ctx context.Context, run *entity.ReportRun) error {
	query := `
		INSERT INTO report_runs (id, generated_at, filters, records, invalid_records, fallback_records, total_cancelled)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.GeneratedAt.UTC(),
		run.Filters,
		run.Records,
		run.InvalidRecords,
		run.FallbackRecords,
		run.TotalCancelled,
	)
	if err != nil {
		return fmt.Errorf("failed to create report run: %w", err)
	}

	return nil
}

func (r *reportRunRepo) GetByID(ctx context.Context, id string) (*entity.ReportRun, error) {
	query := `
		SELECT id, generated_at, filters, records, invalid_records, fallback_records, total_cancelled
		FROM report_runs
		WHERE id = ?
	`

	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report run: %w", err)
	}

	return run, nil
}

func (r *reportRunRepo) ListRecent(ctx context.Context, limit int) ([]*entity.ReportRun, error) {
	query := `
		SELECT id, generated_at, filters, records, invalid_records, fallback_records, total_cancelled
		FROM report_runs
		ORDER BY generated_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	defer rows.Close()

	var runs []*entity.ReportRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*entity.ReportRun, error) {
	run := &entity.ReportRun{}
	err := row.Scan(
		&run.ID,
		&run.GeneratedAt,
		&run.Filters,
		&run.Records,
		&run.InvalidRecords,
		&run.FallbackRecords,
		&run.TotalCancelled,
	)
	if err != nil {
		return nil, err
	}
	return run, nil
}
