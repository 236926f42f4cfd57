package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/contract"
	slackcmd "github.com/diegoclair/absence-report/internal/domain/slack"
	"github.com/diegoclair/absence-report/internal/report"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// sourceCacheMaxAge is how long an unused source snapshot is kept
const sourceCacheMaxAge = 30 * 24 * time.Hour

// DigestConfig configures the periodic Slack digest
type DigestConfig struct {
	ChannelID        string
	NotificationTime string // HH:MM, UTC
	Days             []domain.Weekday
	WindowDays       int
}

type notifier struct {
	reports     contract.ReportService
	slackClient contract.SlackClient
	cfg         DigestConfig
	logger      *zap.Logger
	stopChan    chan struct{}
	mu          sync.Mutex
	running     bool
	now         func() time.Time
}

func newNotifier(reports contract.ReportService, slackClient contract.SlackClient, cfg DigestConfig, logger *zap.Logger) *notifier {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = slackcmd.DefaultSummaryDays
	}
	return &notifier{
		reports:     reports,
		slackClient: slackClient,
		cfg:         cfg,
		logger:      logger,
		stopChan:    make(chan struct{}),
		running:     false,
		now:         time.Now,
	}
}

func (n *notifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.running {
		return
	}
	n.running = true
	n.stopChan = make(chan struct{})
	n.logger.Info("digest notifier starting", zap.String("channel", n.cfg.ChannelID), zap.String("time", n.cfg.NotificationTime))
	go n.mainLoop(n.stopChan)
}

func (n *notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.running {
		return
	}
	n.logger.Info("digest notifier stopping")
	close(n.stopChan)
	n.running = false
}

func (n *notifier) mainLoop(stop <-chan struct{}) {
	for {
		nextTime := n.calculateNext(n.now().UTC())
		if nextTime.IsZero() {
			n.logger.Warn("digest schedule is invalid, notifier stopped")
			return
		}

		n.logger.Debug("next digest scheduled", zap.Time("at", nextTime))

		timer := time.NewTimer(time.Until(nextTime))
		select {
		case <-timer.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			if err := n.sendDigest(ctx); err != nil {
				n.logger.Error("failed to send digest", zap.Error(err))
			}
			if _, err := n.reports.PruneSourceCache(ctx, sourceCacheMaxAge); err != nil {
				n.logger.Warn("failed to prune source cache", zap.Error(err))
			}
			cancel()

		case <-stop:
			timer.Stop()
			return
		}
	}
}

// calculateNext returns the first digest time strictly after now, or the zero
// time when the notification time or the active days are unusable.
func (n *notifier) calculateNext(now time.Time) time.Time {
	parts := strings.Split(n.cfg.NotificationTime, ":")
	if len(parts) != 2 {
		n.logger.Warn("invalid digest time format", zap.String("time", n.cfg.NotificationTime))
		return time.Time{}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		n.logger.Warn("invalid hour in digest time", zap.String("hour", parts[0]))
		return time.Time{}
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		n.logger.Warn("invalid minute in digest time", zap.String("minute", parts[1]))
		return time.Time{}
	}

	activeDays := make(map[domain.Weekday]bool)
	for _, day := range n.cfg.Days {
		if day.IsValid() {
			activeDays[day] = true
		}
	}
	if len(activeDays) == 0 {
		n.logger.Warn("no active days configured for the digest")
		return time.Time{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if activeDays[domain.WeekdayOf(today)] && today.After(now) {
		return today
	}

	for i := 1; i <= 7; i++ {
		nextDay := today.AddDate(0, 0, i)
		if activeDays[domain.WeekdayOf(nextDay)] {
			return nextDay
		}
	}

	return time.Time{}
}

// sendDigest posts the impact summary of the last WindowDays days, today included.
// Leaves reaching outside the window only count their sessions inside it.
func (n *notifier) sendDigest(ctx context.Context) error {
	now := n.now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -(n.cfg.WindowDays - 1))

	opts := report.NewOptions(
		report.WithWindow(from, to),
		report.WithClipToWindow(),
		report.WithGroupBy(report.GroupByDepartment),
		report.WithTop(5),
	)

	r, err := n.reports.Impact(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to build impact report: %w", err)
	}

	_, _, err = n.slackClient.PostMessageContext(ctx,
		n.cfg.ChannelID,
		slack.MsgOptionText(slackcmd.FormatSummary(r, from, to), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	n.logger.Info("digest sent",
		zap.String("channel", n.cfg.ChannelID),
		zap.Int("cancelled_sessions", r.Total.CancelledSessions),
	)
	return nil
}
