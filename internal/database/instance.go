package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/absence-report/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	sourceCacheRepo contract.SourceCacheRepo
	reportRunRepo   contract.ReportRunRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.sourceCacheRepo = newSourceCacheRepo(i.db.conn)
	i.reportRunRepo = newReportRunRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		sourceCacheRepo: newSourceCacheRepo(db),
		reportRunRepo:   newReportRunRepo(db),
	}
}

// SourceCache returns the source cache repository
func (i *instance) SourceCache() contract.SourceCacheRepo {
	return i.sourceCacheRepo
}

// ReportRun returns the report run repository
func (i *instance) ReportRun() contract.ReportRunRepo {
	return i.reportRunRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
