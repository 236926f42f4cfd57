package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/diegoclair/absence-report/internal/report"
	"github.com/diegoclair/absence-report/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func sampleImpacts() []entity.LeaveImpact {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	return []entity.LeaveImpact{
		{
			LeaveRecord:       entity.LeaveRecord{Professional: "SMITH", StartDate: day(4), EndDate: day(10), Department: "Clínica"},
			CancelledSessions: 2,
			Method:            domain.MethodSchedule,
		},
		{
			LeaveRecord:       entity.LeaveRecord{Professional: "DOE", StartDate: day(5), EndDate: day(6), Department: "Cirugía"},
			CancelledSessions: 2,
			Method:            domain.MethodCalendarDays,
		},
	}
}

// run executes the command tree against a mocked report service
func run(t *testing.T, reports *mocks.MockReportService, args ...string) (string, GlobalFlags, error) {
	t.Helper()

	var got GlobalFlags
	called, closed := false, false
	setup := func(_ context.Context, flags GlobalFlags) (*App, func(), error) {
		called = true
		got = flags
		return &App{Reports: reports, Logger: zap.NewNop()}, func() { closed = true }, nil
	}

	root, closeFn := NewRootCmd(setup)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	closeFn()
	assert.Equal(t, called, closed, "setup resources should be released")

	return out.String(), got, err
}

func TestImpactCmd(t *testing.T) {
	t.Run("Should pass the flags as report options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)

		reports.EXPECT().
			Impact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts report.Options) (*report.ImpactReport, error) {
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), opts.From)
				assert.True(t, opts.To.IsZero())
				assert.Equal(t, []string{"PEREZ, ANA", "SMITH"}, opts.Professionals)
				assert.Equal(t, report.GroupByService, opts.GroupBy)
				assert.Equal(t, 2, opts.Top)
				return report.BuildImpact(sampleImpacts(), report.NewOptions()), nil
			}).Times(1)

		out, flags, err := run(t, reports, "impact",
			"--leaves", "ausencias.csv",
			"--from", "01/03/2024",
			"--professional", "Perez, Ana", "--professional", "smith",
			"--group-by", "servicio", "--top", "2",
		)
		require.NoError(t, err)
		assert.Equal(t, "ausencias.csv", flags.Leaves)
		assert.Contains(t, out, "TOTAL")
		assert.Contains(t, out, "2 leaves, 4 cancelled sessions (1 by calendar days, 0 invalid, 0 without dates)")
	})

	t.Run("Should write the detail as CSV", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		reports.EXPECT().Impact(gomock.Any(), gomock.Any()).
			Return(report.BuildImpact(sampleImpacts(), report.NewOptions()), nil).Times(1)

		out, _, err := run(t, reports, "impact", "--detail", "--format", "csv")
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "SMITH", records[1][0])
		assert.Equal(t, "calendar_days", records[2][len(records[2])-1])
	})

	t.Run("Should write XLSX to a file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		reports.EXPECT().Impact(gomock.Any(), gomock.Any()).
			Return(report.BuildImpact(sampleImpacts(), report.NewOptions()), nil).Times(1)

		path := filepath.Join(t.TempDir(), "ausencias.xlsx")
		_, _, err := run(t, reports, "impact", "--format", "xlsx", "--output", path)
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Ausencias")
		require.NoError(t, err)
		assert.Len(t, rows, 4) // header, two departments, TOTAL
	})

	t.Run("Should reject invalid flags before calling the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)

		_, _, err := run(t, reports, "impact", "--from", "ayer")
		assert.ErrorContains(t, err, "invalid --from date")

		_, _, err = run(t, reports, "impact", "--format", "pdf")
		assert.ErrorContains(t, err, "invalid --format")

		_, _, err = run(t, reports, "impact", "--group-by", "planeta")
		assert.ErrorIs(t, err, report.ErrUnknownGroup)
	})

	t.Run("Should wrap service errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		reports.EXPECT().Impact(gomock.Any(), gomock.Any()).Return(nil, errors.New("sheet offline")).Times(1)

		_, _, err := run(t, reports, "impact")
		assert.EqualError(t, err, "failed to build impact report: sheet offline")
	})
}

func TestPivotCmd(t *testing.T) {
	t.Run("Should pivot with periods and comparison", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)

		reports.EXPECT().
			Pivot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts report.PivotOptions) (*report.PivotTable, error) {
				assert.Equal(t, []string{"SERVICIO"}, opts.GroupBy)
				assert.Equal(t, []string{"TURNOS"}, opts.Metrics)
				assert.Equal(t, report.ComparisonByPeriod, opts.Comparison)
				assert.Equal(t, report.DefaultDateColumn, opts.DateColumn)
				assert.Len(t, opts.Periods, 2)
				return &report.PivotTable{
					GroupBy:      opts.GroupBy,
					ValueColumns: []string{"TURNOS 2024-01-01", "TURNOS 2024-02-01"},
					Rows:         []report.PivotRow{{Keys: []string{"Cardiología"}, Values: []float64{150, 120}}},
					Total:        report.PivotRow{Keys: []string{"TOTAL"}, Values: []float64{150, 120}},
				}, nil
			}).Times(1)

		out, _, err := run(t, reports, "pivot", "-g", "SERVICIO", "-m", "TURNOS",
			"-p", "01/01/2024", "-p", "2024-02-01", "--comparison", "by_period", "-f", "csv")
		require.NoError(t, err)
		assert.Equal(t, "SERVICIO,TURNOS 2024-01-01,TURNOS 2024-02-01\nCardiología,150,120\nTOTAL,150,120\n", out)
	})

	t.Run("Should list the dimensions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		reports.EXPECT().PivotDimensions(gomock.Any(), report.DefaultDateColumn).
			Return(&report.Dimensions{
				DateColumn: "PERIODO",
				Periods:    []time.Time{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
				GroupBy:    []string{"SERVICIO", "SEDE"},
				Metrics:    []string{"TURNOS"},
			}, nil).Times(1)

		out, _, err := run(t, reports, "pivot", "--list")
		require.NoError(t, err)
		assert.Contains(t, out, "Periods (PERIODO): 2024-01-01")
		assert.Contains(t, out, "Group by: SERVICIO, SEDE")
		assert.Contains(t, out, "Metrics: TURNOS")
	})

	t.Run("Should surface the empty selection error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		reports.EXPECT().Pivot(gomock.Any(), gomock.Any()).Return(nil, report.ErrEmptySelection).Times(1)

		_, _, err := run(t, reports, "pivot", "-g", "SERVICIO")
		assert.ErrorIs(t, err, report.ErrEmptySelection)
	})
}

func TestScheduleCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportService(ctrl)

	reports.EXPECT().ProfessionalSchedule(gomock.Any(), "Perez, Ana").
		Return(map[domain.Weekday]int{domain.Tuesday: 2}, true, nil).Times(1)
	reports.EXPECT().ProfessionalSchedule(gomock.Any(), "DOE").
		Return(map[domain.Weekday]int{}, false, nil).Times(1)

	out, _, err := run(t, reports, "schedule", "Perez,", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "PEREZ, ANA: 2 weekly sessions")
	assert.Contains(t, out, "Martes")

	out, _, err = run(t, reports, "schedule", "DOE")
	require.NoError(t, err)
	assert.Contains(t, out, "DOE is not in the schedule")

	_, _, err = run(t, reports, "schedule")
	assert.Error(t, err)
}

func TestRunsCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportService(ctrl)

	reports.EXPECT().RecentRuns(gomock.Any(), 3).Return([]*entity.ReportRun{
		{ID: "0f8fad5b-d9cb-469f-a165-70867728950e", GeneratedAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Records: 2, TotalCancelled: 4, Filters: "{}"},
	}, nil).Times(1)
	reports.EXPECT().RecentRuns(gomock.Any(), 10).Return(nil, nil).Times(1)

	out, _, err := run(t, reports, "runs", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "0f8fad5b")
	assert.Contains(t, out, "2024-03-04 09:00:00")

	out, _, err = run(t, reports, "runs")
	require.NoError(t, err)
	assert.Contains(t, out, "No report runs found.")
}

func TestNewRootCmd_SetupFailure(t *testing.T) {
	root, closeFn := NewRootCmd(func(context.Context, GlobalFlags) (*App, func(), error) {
		return nil, nil, errors.New("database locked")
	})
	defer closeFn()

	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"runs"})

	err := root.ExecuteContext(context.Background())
	assert.EqualError(t, err, "failed to initialize: database locked")
}
