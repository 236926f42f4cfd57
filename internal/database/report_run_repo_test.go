package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRun(id string, generatedAt time.Time) *entity.ReportRun {
	return &entity.ReportRun{
		ID:              id,
		GeneratedAt:     generatedAt,
		Filters:         `{"group_by":"department"}`,
		Records:         4,
		InvalidRecords:  1,
		FallbackRecords: 2,
		TotalCancelled:  17,
	}
}

func TestReportRunRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newReportRunRepo(db.conn)

	run := newTestRun("run-1", time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC))
	err := repo.Create(ctx, run)
	require.NoError(t, err, "Failed to create report run")

	found, err := repo.GetByID(ctx, "run-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, run.Filters, found.Filters)
	assert.Equal(t, run.Records, found.Records)
	assert.Equal(t, run.InvalidRecords, found.InvalidRecords)
	assert.Equal(t, run.FallbackRecords, found.FallbackRecords)
	assert.Equal(t, run.TotalCancelled, found.TotalCancelled)
	assert.True(t, run.GeneratedAt.Equal(found.GeneratedAt))

	// Duplicate IDs are rejected
	err = repo.Create(ctx, newTestRun("run-1", time.Now()))
	assert.Error(t, err)

	notFound, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestReportRunRepository_ListRecent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newReportRunRepo(db.conn)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, newTestRun(id, base.AddDate(0, 0, i))))
	}

	runs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)

	emptyDB := SetupTestDB(t)
	defer CleanupTestDB(t, emptyDB)

	empty, err := newReportRunRepo(emptyDB.conn).ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)

	t.Run("Should commit when fn succeeds", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.ReportRun().Create(ctx, newTestRun("committed", time.Now().UTC()))
		})
		require.NoError(t, err)

		found, err := dm.ReportRun().GetByID(ctx, "committed")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("Should roll back when fn fails", func(t *testing.T) {
		errBoom := errors.New("boom")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.ReportRun().Create(ctx, newTestRun("rolled-back", time.Now().UTC())); err != nil {
				return err
			}
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)

		found, err := dm.ReportRun().GetByID(ctx, "rolled-back")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
