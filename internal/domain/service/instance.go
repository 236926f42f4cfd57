package service

import (
	"github.com/diegoclair/absence-report/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Report   contract.ReportService
	Notifier *notifier
}

// NewInstance wires the services. The digest notifier is only built when a
// Slack client and a digest channel are both available.
func NewInstance(dm contract.DataManager, fetcher contract.TableFetcher, sources Sources, slackClient contract.SlackClient, digest DigestConfig, logger *zap.Logger) *Instance {
	reportService := newReportService(dm, fetcher, sources, logger)

	instance := &Instance{
		Report: reportService,
	}
	if slackClient != nil && digest.ChannelID != "" {
		instance.Notifier = newNotifier(reportService, slackClient, digest, logger)
	}

	return instance
}
