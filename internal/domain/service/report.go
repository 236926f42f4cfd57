package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/agenda"
	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/diegoclair/absence-report/internal/report"
	"github.com/diegoclair/absence-report/internal/source"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultRecentRuns = 10

type reportService struct {
	dm              contract.DataManager
	fetcher         contract.TableFetcher
	sources         Sources
	scheduleColumns agenda.ScheduleColumns
	leaveColumns    source.LeaveColumns
	logger          *zap.Logger
}

func newReportService(dm contract.DataManager, fetcher contract.TableFetcher, sources Sources, logger *zap.Logger) *reportService {
	return &reportService{
		dm:              dm,
		fetcher:         fetcher,
		sources:         sources,
		scheduleColumns: agenda.DefaultScheduleColumns,
		leaveColumns:    source.DefaultLeaveColumns,
		logger:          logger,
	}
}

func (s *reportService) Impact(ctx context.Context, opts report.Options) (*report.ImpactReport, error) {
	idx, err := s.scheduleIndex(ctx)
	if err != nil {
		return nil, err
	}

	if s.sources.Leaves == "" {
		return nil, fmt.Errorf("%w: leaves", ErrSourceNotConfigured)
	}
	leaveTable, err := s.fetcher.Fetch(ctx, s.sources.Leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaves: %w", err)
	}

	leaves, skipped, err := source.ParseLeaves(leaveTable, s.leaveColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leaves: %w", err)
	}
	if skipped > 0 {
		s.logger.Warn("leave rows without valid dates were left out", zap.Int("skipped", skipped))
	}

	if opts.ClipToWindow {
		leaves = clipToWindow(leaves, opts)
	}

	impacts, invalid := agenda.Impacts(leaves, idx)
	for _, l := range invalid {
		s.logger.Warn("leave ends before it starts",
			zap.String("professional", l.Professional),
			zap.Time("start", l.StartDate),
			zap.Time("end", l.EndDate),
		)
	}

	r := report.BuildImpact(impacts, opts)
	r.InvalidRecords = len(invalid)
	r.SkippedRecords = skipped

	s.recordRun(ctx, r)

	return r, nil
}

// recordRun stores the run history. A failure is logged and never fails the report.
func (s *reportService) recordRun(ctx context.Context, r *report.ImpactReport) {
	filters, err := json.Marshal(r.Options)
	if err != nil {
		s.logger.Warn("failed to encode report filters", zap.Error(err))
		filters = []byte("{}")
	}

	run := &entity.ReportRun{
		ID:              uuid.NewString(),
		GeneratedAt:     r.GeneratedAt,
		Filters:         string(filters),
		Records:         r.Total.Records,
		InvalidRecords:  r.InvalidRecords,
		FallbackRecords: r.FallbackRecords,
		TotalCancelled:  r.Total.CancelledSessions,
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		return tx.ReportRun().Create(ctx, run)
	})
	if err != nil {
		s.logger.Warn("failed to record report run", zap.String("run_id", run.ID), zap.Error(err))
		return
	}

	s.logger.Info("impact report generated",
		zap.String("run_id", run.ID),
		zap.Int("records", run.Records),
		zap.Int("cancelled_sessions", run.TotalCancelled),
		zap.Int("fallback_records", run.FallbackRecords),
	)
}

func (s *reportService) Pivot(ctx context.Context, opts report.PivotOptions) (*report.PivotTable, error) {
	t, err := s.appointments(ctx)
	if err != nil {
		return nil, err
	}
	return report.Pivot(t, opts)
}

func (s *reportService) PivotDimensions(ctx context.Context, dateColumn string) (*report.Dimensions, error) {
	t, err := s.appointments(ctx)
	if err != nil {
		return nil, err
	}
	return report.Describe(t, dateColumn)
}

func (s *reportService) appointments(ctx context.Context) (*entity.Table, error) {
	if s.sources.Appointments == "" {
		return nil, fmt.Errorf("%w: appointments", ErrSourceNotConfigured)
	}
	t, err := s.fetcher.Fetch(ctx, s.sources.Appointments)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return t, nil
}

func (s *reportService) ProfessionalSchedule(ctx context.Context, professional string) (map[domain.Weekday]int, bool, error) {
	idx, err := s.scheduleIndex(ctx)
	if err != nil {
		return nil, false, err
	}
	return idx.Weekdays(professional), idx.Has(professional), nil
}

// scheduleIndex fetches the schedule and builds the index. A schedule without
// the expected columns is treated as empty so every leave falls back to calendar days.
func (s *reportService) scheduleIndex(ctx context.Context) (*agenda.Index, error) {
	if s.sources.Schedule == "" {
		return nil, fmt.Errorf("%w: schedule", ErrSourceNotConfigured)
	}

	t, err := s.fetcher.Fetch(ctx, s.sources.Schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	idx, err := agenda.BuildIndexFromTable(t, s.scheduleColumns)
	if errors.Is(err, agenda.ErrMissingScheduleColumn) {
		s.logger.Warn("schedule is missing a required column, using an empty schedule", zap.Error(err))
		return agenda.BuildIndex(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule index: %w", err)
	}

	s.logger.Debug("schedule index built", zap.Int("professionals", idx.Len()))
	return idx, nil
}

func (s *reportService) RecentRuns(ctx context.Context, limit int) ([]*entity.ReportRun, error) {
	if limit <= 0 {
		limit = defaultRecentRuns
	}
	runs, err := s.dm.ReportRun().ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	return runs, nil
}

func (s *reportService) Run(ctx context.Context, id string) (*entity.ReportRun, error) {
	run, err := s.dm.ReportRun().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get report run: %w", err)
	}
	if run == nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, nil
}

func (s *reportService) PruneSourceCache(ctx context.Context, maxAge time.Duration) (int64, error) {
	var deleted int64
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		deleted, err = tx.SourceCache().DeleteOlderThan(ctx, time.Now().UTC().Add(-maxAge))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune source cache: %w", err)
	}
	if deleted > 0 {
		s.logger.Info("pruned source cache", zap.Int64("deleted", deleted))
	}
	return deleted, nil
}

// clipToWindow trims the leaves overlapping the report window to the part
// inside it. Leaves outside the window or with an inverted range are kept as is.
func clipToWindow(leaves []entity.LeaveRecord, opts report.Options) []entity.LeaveRecord {
	out := make([]entity.LeaveRecord, len(leaves))
	for i, l := range leaves {
		if !l.EndDate.Before(l.StartDate) && opts.Matches(l) {
			if !opts.From.IsZero() && l.StartDate.Before(opts.From) {
				l.StartDate = opts.From
			}
			if !opts.To.IsZero() && l.EndDate.After(opts.To) {
				l.EndDate = opts.To
			}
		}
		out[i] = l
	}
	return out
}
