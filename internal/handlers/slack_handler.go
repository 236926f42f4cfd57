package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/contract"
	slackcmd "github.com/diegoclair/absence-report/internal/domain/slack"
	"github.com/diegoclair/absence-report/internal/report"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	reports       contract.ReportService
	signingSecret string
	logger        *zap.Logger
	now           func() time.Time
}

func New(reports contract.ReportService, signingSecret string, logger *zap.Logger) *SlackHandler {
	return &SlackHandler{
		reports:       reports,
		signingSecret: signingSecret,
		logger:        logger,
		now:           time.Now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.logger.Debug("slash command received",
		zap.String("command", string(cmd.Type)),
		zap.String("channel", s.ChannelID),
		zap.String("user", s.UserID),
	)

	// Handle command
	response := h.handleCommand(r, cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSummary:
		return h.handleSummary(r, cmd)
	case slackcmd.CmdProfessional:
		return h.handleProfessional(r, cmd)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(r, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Comando no reconocido")
	}
}

func (h *SlackHandler) handleSummary(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	days, err := cmd.Days()
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	now := h.now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -(days - 1))

	result, err := h.reports.Impact(r.Context(), report.NewOptions(
		report.WithWindow(from, to),
		report.WithGroupBy(report.GroupByDepartment),
	))
	if err != nil {
		h.logger.Error("failed to build summary", zap.Error(err))
		return h.createErrorResponse("Error al generar el resumen")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         slackcmd.FormatSummary(result, from, to),
	}
}

func (h *SlackHandler) handleProfessional(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	name := cmd.Name()
	if name == "" {
		return h.createErrorResponse("Por favor, indicá el profesional: `/ausencias profesional NOMBRE`")
	}

	result, err := h.reports.Impact(r.Context(), report.NewOptions(
		report.WithProfessionals(name),
		report.WithGroupBy(report.GroupByProfessional),
	))
	if err != nil {
		h.logger.Error("failed to build professional report", zap.String("professional", name), zap.Error(err))
		return h.createErrorResponse("Error al consultar las ausencias")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatProfessional(name, result),
	}
}

func (h *SlackHandler) handleSchedule(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	name := cmd.Name()
	if name == "" {
		return h.createErrorResponse("Por favor, indicá el profesional: `/ausencias agenda NOMBRE`")
	}

	weekdays, found, err := h.reports.ProfessionalSchedule(r.Context(), name)
	if err != nil {
		h.logger.Error("failed to read schedule", zap.String("professional", name), zap.Error(err))
		return h.createErrorResponse("Error al consultar la agenda")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatSchedule(name, weekdays, found),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
