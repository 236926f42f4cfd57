package contract

import (
	"context"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	SourceCache() SourceCacheRepo
	ReportRun() ReportRunRepo
}

// SourceCacheRepo defines the contract for the fetched source cache
type SourceCacheRepo interface {
	Upsert(ctx context.Context, snapshot *entity.SourceSnapshot) error
	GetByLocation(ctx context.Context, location string) (*entity.SourceSnapshot, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ReportRunRepo defines the contract for report run history
type ReportRunRepo interface {
	Create(ctx context.Context, run *entity.ReportRun) error
	GetByID(ctx context.Context, id string) (*entity.ReportRun, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.ReportRun, error)
}
