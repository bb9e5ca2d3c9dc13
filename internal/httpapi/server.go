// Package httpapi exposes submission, reporting, export and chat delivery
// over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/annotationhq/internal/service"
	"github.com/alexanderramin/annotationhq/internal/slack"
	"github.com/google/uuid"
)

// maxRequestBodySize limits POST bodies.
const maxRequestBodySize = 1 << 20

// Server holds the dependencies of every handler.
type Server struct {
	WorkLogs  service.WorkLogService
	Reports   service.ReportService
	Notifier  slack.Notifier
	TaskTypes []string
	Statuses  []string
	Logger    *slog.Logger

	// Metrics, when set, is served at GET /metrics.
	Metrics http.Handler
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/options", s.handleOptions)
	mux.HandleFunc("POST /api/log", s.handleLog)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/filters", s.handleFilters)
	mux.HandleFunc("GET /export/csv", s.handleExport("csv"))
	mux.HandleFunc("GET /export/excel", s.handleExport("xlsx"))
	mux.HandleFunc("GET /export/json", s.handleExport("json"))
	mux.HandleFunc("POST /api/slack/preview", s.handleSlackPreview)
	mux.HandleFunc("POST /api/slack/send", s.handleSlackSend)
	mux.HandleFunc("GET /api/slack/config", s.handleSlackConfig)
	if s.Metrics != nil {
		mux.Handle("GET /metrics", s.Metrics)
	}
	return s.withRequestLog(mux)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger().InfoContext(r.Context(), "http_request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
