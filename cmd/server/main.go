package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/absence-report/internal/config"
	"github.com/diegoclair/absence-report/internal/database"
	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/internal/domain/service"
	"github.com/diegoclair/absence-report/internal/handlers"
	"github.com/diegoclair/absence-report/internal/logger"
	"github.com/diegoclair/absence-report/internal/source"
	"github.com/diegoclair/absence-report/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	dm := database.NewInstance(db)
	fetcher := source.NewCachedFetcher(
		source.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, zlog),
		dm.SourceCache(),
		cfg.SourceCacheTTL,
		zlog,
	)

	// the bot token is only used to post the digest
	var slackClient contract.SlackClient
	if cfg.DigestEnabled() {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	services := service.NewInstance(dm, fetcher, service.Sources{
		Schedule:     cfg.ScheduleSource,
		Leaves:       cfg.LeaveSource,
		Appointments: cfg.AppointmentsSource,
	}, slackClient, service.DigestConfig{
		ChannelID:        cfg.SlackDigestChannel,
		NotificationTime: cfg.DigestTime,
		Days:             cfg.DigestDays,
		WindowDays:       cfg.DigestWindowDays,
	}, zlog)

	if _, err := services.Report.PruneSourceCache(context.Background(), 30*24*time.Hour); err != nil {
		zlog.Warn("failed to prune source cache", zap.Error(err))
	}

	if services.Notifier != nil {
		services.Notifier.Start()
		defer services.Notifier.Stop()
	} else {
		zlog.Info("slack digest disabled")
	}

	var slackHandler *handlers.SlackHandler
	if cfg.SlackSigningSecret != "" {
		slackHandler = handlers.New(services.Report, cfg.SlackSigningSecret, zlog)
	} else {
		zlog.Warn("SLACK_SIGNING_SECRET not set, slash commands disabled")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handlers.NewAPI(services.Report, zlog), slackHandler, zlog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
