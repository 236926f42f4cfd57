package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// NewRouter registers every route. The Slack route is skipped when slack is nil.
func NewRouter(api *APIHandler, slack *SlackHandler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", api.HandleHealth)
	mux.HandleFunc("GET /api/impact", api.HandleImpact)
	mux.HandleFunc("GET /api/pivot", api.HandlePivot)
	mux.HandleFunc("GET /api/pivot/dimensions", api.HandlePivotDimensions)
	mux.HandleFunc("GET /api/schedule/{professional}", api.HandleSchedule)
	mux.HandleFunc("GET /api/runs", api.HandleRuns)
	mux.HandleFunc("GET /api/runs/{id}", api.HandleRun)

	if slack != nil {
		mux.HandleFunc("POST /slack/commands", slack.HandleSlashCommand)
	}

	return logRequests(mux, logger)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
