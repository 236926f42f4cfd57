package service

import (
	"context"
	"testing"

	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockSourceCacheRepo *mocks.MockSourceCacheRepo
	mockReportRunRepo   *mocks.MockReportRunRepo
	mockTableFetcher    *mocks.MockTableFetcher
	mockSlackClient     *mocks.MockSlackClient
	mockReportService   *mocks.MockReportService
}

var testSources = Sources{
	Schedule:     "https://example.com/agenda.csv",
	Leaves:       "https://example.com/ausencias.csv",
	Appointments: "https://example.com/turnos.csv",
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	sourceCacheRepo := mocks.NewMockSourceCacheRepo(ctrl)
	dm.EXPECT().SourceCache().Return(sourceCacheRepo).AnyTimes()

	reportRunRepo := mocks.NewMockReportRunRepo(ctrl)
	dm.EXPECT().ReportRun().Return(reportRunRepo).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockSourceCacheRepo: sourceCacheRepo,
		mockReportRunRepo:   reportRunRepo,
		mockTableFetcher:    mocks.NewMockTableFetcher(ctrl),
		mockSlackClient:     mocks.NewMockSlackClient(ctrl),
		mockReportService:   mocks.NewMockReportService(ctrl),
	}

	// validate service creation
	reportService := newReportService(dm, m.mockTableFetcher, testSources, zap.NewNop())
	require.NotNil(t, reportService)

	return
}

// expectTransaction runs the transaction body against the same mocks
func expectTransaction(ctx context.Context, mocks allMocks) {
	mocks.mockDataManager.EXPECT().
		WithTransaction(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(mocks.mockDataManager)
		}).Times(1)
}
