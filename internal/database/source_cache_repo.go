package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

type sourceCacheRepo struct {
	db dbConn
}

func newSourceCacheRepo(db dbConn) contract.SourceCacheRepo {
	return &sourceCacheRepo{db: db}
}

func (r *sourceCacheRepo) Upsert(ctx context.Context, snapshot *entity.SourceSnapshot) error {
	query := `
		INSERT INTO source_snapshots (location, content_type, body, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(location) DO UPDATE SET
			content_type = excluded.content_type,
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`

	_, err := r.db.ExecContext(ctx, query,
		snapshot.Location,
		snapshot.ContentType,
		snapshot.Body,
		snapshot.FetchedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert source snapshot: %w", err)
	}

	return r.db.QueryRowContext(ctx,
		`SELECT id FROM source_snapshots WHERE location = ?`, snapshot.Location,
	).Scan(&snapshot.ID)
}

func (r *sourceCacheRepo) GetByLocation(ctx context.Context, location string) (*entity.SourceSnapshot, error) {
	snapshot := &entity.SourceSnapshot{}
	query := `
		SELECT id, location, content_type, body, fetched_at
		FROM source_snapshots
		WHERE location = ?
	`

	err := r.db.QueryRowContext(ctx, query, location).Scan(
		&snapshot.ID,
		&snapshot.Location,
		&snapshot.ContentType,
		&snapshot.Body,
		&snapshot.FetchedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get source snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *sourceCacheRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM source_snapshots WHERE fetched_at < ?`

	result, err := r.db.ExecContext(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete source snapshots: %w", err)
	}

	return result.RowsAffected()
}
