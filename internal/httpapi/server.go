// Package httpapi exposes the reports and the event archive over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/archive"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/report"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

type Dependencies struct {
	Logger  *log.Logger
	Addr    string
	Archive *archive.Archive
}

type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	mux        *http.ServeMux
	archive    *archive.Archive
}

func NewServer(d Dependencies) *Server {
	mux := http.NewServeMux()

	s := &Server{
		logger:  d.Logger,
		mux:     mux,
		archive: d.Archive,
	}

	mux.HandleFunc("GET /v1/reports/unit-fobs", s.handleUnitFobReport)
	mux.HandleFunc("GET /v1/reports/busy-times", s.handleBusyTimeReport)
	mux.HandleFunc("POST /v1/events", s.handleEvent)

	handler := loggingMiddleware(d.Logger, mux)

	s.httpServer = &http.Server{
		Addr:              d.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleUnitFobReport(w http.ResponseWriter, r *http.Request) {
	s.writeReport(w, r, report.UnitFobs)
}

func (s *Server) handleBusyTimeReport(w http.ResponseWriter, r *http.Request) {
	s.writeReport(w, r, report.BusyHours)
}

// writeReport runs an aggregator over the current archive snapshot and
// returns the rendered CSV.
func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, aggregate func([]types.Record) report.Report) {
	records, err := s.archive.Snapshot(r.Context())
	if err != nil {
		s.logger.Printf("report snapshot error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(aggregate(records).Render() + "\n"))
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req types.EventRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	// Defective events (no unit, bad timestamp) are archived like any
	// other row; the aggregators exclude them at report time.
	if _, err := s.archive.Import(r.Context(), []types.Record{req.Record()}); err != nil {
		s.logger.Printf("event import error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected server error")
		return
	}

	writeJSON(w, http.StatusOK, types.EventResponse{
		OK:         true,
		UnitNumber: req.Record().UnitNumber(),
		ServerTime: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
