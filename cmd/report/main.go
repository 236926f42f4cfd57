package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/diegoclair/absence-report/internal/cli"
	"github.com/diegoclair/absence-report/internal/config"
	"github.com/diegoclair/absence-report/internal/database"
	"github.com/diegoclair/absence-report/internal/domain/service"
	"github.com/diegoclair/absence-report/internal/logger"
	"github.com/diegoclair/absence-report/internal/source"
	"github.com/diegoclair/absence-report/migrator/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read .env: %v", err)
	}

	cfg := config.Load()

	root, closeFn := cli.NewRootCmd(func(ctx context.Context, flags cli.GlobalFlags) (*cli.App, func(), error) {
		level := "warn"
		if flags.Verbose {
			level = "debug"
		}
		zlog, err := logger.New(false, level)
		if err != nil {
			return nil, nil, err
		}

		dbPath := orDefault(flags.Database, cfg.DatabasePath)
		db, err := database.New(dbPath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		dm := database.NewInstance(db)
		fetcher := source.NewCachedFetcher(
			source.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, zlog),
			dm.SourceCache(),
			cfg.SourceCacheTTL,
			zlog,
		)

		services := service.NewInstance(dm, fetcher, service.Sources{
			Schedule:     orDefault(flags.Schedule, cfg.ScheduleSource),
			Leaves:       orDefault(flags.Leaves, cfg.LeaveSource),
			Appointments: orDefault(flags.Appointments, cfg.AppointmentsSource),
		}, nil, service.DigestConfig{}, zlog)

		cleanup := func() {
			_ = zlog.Sync()
			db.Close()
		}
		return &cli.App{Reports: services.Report, Logger: zlog}, cleanup, nil
	})

	err := root.Execute()
	closeFn()
	if err != nil {
		os.Exit(1)
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
