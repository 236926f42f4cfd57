package contract

import (
	"context"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/diegoclair/absence-report/internal/report"
)

type ReportService interface {
	Impact(ctx context.Context, opts report.Options) (*report.ImpactReport, error)
	Pivot(ctx context.Context, opts report.PivotOptions) (*report.PivotTable, error)
	PivotDimensions(ctx context.Context, dateColumn string) (*report.Dimensions, error)
	ProfessionalSchedule(ctx context.Context, professional string) (map[domain.Weekday]int, bool, error)
	RecentRuns(ctx context.Context, limit int) ([]*entity.ReportRun, error)
	Run(ctx context.Context, id string) (*entity.ReportRun, error)
	PruneSourceCache(ctx context.Context, maxAge time.Duration) (int64, error)
}
