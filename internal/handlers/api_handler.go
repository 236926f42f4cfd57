package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/diegoclair/absence-report/internal/domain/service"
	"github.com/diegoclair/absence-report/internal/report"
	"github.com/diegoclair/absence-report/internal/source"
	"github.com/diegoclair/absence-report/pkg/models"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type APIHandler struct {
	reports contract.ReportService
	logger  *zap.Logger
}

func NewAPI(reports contract.ReportService, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		reports: reports,
		logger:  logger,
	}
}

func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// HandleImpact serves the impact report. CSV and XLSX carry one row per leave
// unless view=groups asks for the grouped table.
func (h *APIHandler) HandleImpact(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format, err := parseFormat(q)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	opts, err := impactOptions(q)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	result, err := h.reports.Impact(r.Context(), opts)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if format == formatJSON {
		h.respondJSON(w, http.StatusOK, result)
		return
	}

	header, rows := result.Detail()
	if q.Get("view") == "groups" {
		header, rows = result.Table()
	}
	h.respondTable(w, format, "ausencias", header, rows)
}

func (h *APIHandler) HandlePivot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format, err := parseFormat(q)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	opts, err := pivotOptions(q)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	result, err := h.reports.Pivot(r.Context(), opts)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	if format == formatJSON {
		h.respondJSON(w, http.StatusOK, result)
		return
	}

	header, rows := result.Records()
	h.respondTable(w, format, "tabla_dinamica", header, rows)
}

func (h *APIHandler) HandlePivotDimensions(w http.ResponseWriter, r *http.Request) {
	result, err := h.reports.PivotDimensions(r.Context(), r.URL.Query().Get("date_column"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

func (h *APIHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	professional := r.PathValue("professional")
	if professional == "" {
		h.respondWithError(w, fmt.Errorf("%w: professional", errBadParam))
		return
	}

	weekdays, found, err := h.reports.ProfessionalSchedule(r.Context(), professional)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	resp := models.ScheduleResponse{
		Professional: domain.NormalizeKey(professional),
		Found:        found,
		Weekdays:     []models.WeekdaySessions{},
	}
	for _, day := range domain.AllWeekdays {
		n := weekdays[day]
		if n == 0 {
			continue
		}
		resp.WeeklySessions += n
		resp.Weekdays = append(resp.Weekdays, models.WeekdaySessions{
			Weekday:  int(day),
			Name:     day.String(),
			Label:    domain.WeekdayLabels[day],
			Sessions: n,
		})
	}

	status := http.StatusOK
	if !found {
		status = http.StatusNotFound
	}
	h.respondJSON(w, status, resp)
}

func (h *APIHandler) HandleRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			h.respondWithError(w, fmt.Errorf("%w: limit %q", errBadParam, raw))
			return
		}
	}

	runs, err := h.reports.RecentRuns(r.Context(), limit)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	resp := models.RunsResponse{Runs: make([]models.ReportRun, 0, len(runs))}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, toRunModel(run))
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.reports.Run(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toRunModel(run))
}

func toRunModel(run *entity.ReportRun) models.ReportRun {
	filters := json.RawMessage(run.Filters)
	if !json.Valid(filters) {
		filters = json.RawMessage("{}")
	}
	return models.ReportRun{
		ID:              run.ID,
		GeneratedAt:     run.GeneratedAt,
		Filters:         filters,
		Records:         run.Records,
		InvalidRecords:  run.InvalidRecords,
		FallbackRecords: run.FallbackRecords,
		TotalCancelled:  run.TotalCancelled,
	}
}

func (h *APIHandler) respondTable(w http.ResponseWriter, format, name string, header []string, rows [][]string) {
	filename := fmt.Sprintf("%s_%s.%s", name, time.Now().UTC().Format("20060102"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	var err error
	switch format {
	case formatXLSX:
		w.Header().Set("Content-Type", xlsxContentType)
		err = report.WriteXLSX(w, "", header, rows)
	default:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		err = report.WriteCSV(w, header, rows)
	}
	if err != nil {
		h.logger.Error("failed to write export", zap.String("format", format), zap.Error(err))
	}
}

func (h *APIHandler) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *APIHandler) respondWithError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.respondJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadParam),
		errors.Is(err, report.ErrEmptySelection),
		errors.Is(err, report.ErrUnknownColumn),
		errors.Is(err, report.ErrUnknownGroup),
		errors.Is(err, report.ErrUnknownPeriod):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSourceNotConfigured),
		errors.Is(err, source.ErrSourceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
