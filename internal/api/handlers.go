package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/compass/internal/display"
	"github.com/UnknownOlympus/compass/internal/reporter"
)

type reportResponse struct {
	Outcome   reporter.Outcome `json:"outcome"`
	Message   string           `json:"message"`
	Latitude  *float64         `json:"latitude,omitempty"`
	Longitude *float64         `json:"longitude,omitempty"`
}

type displayResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// handleReportLocation triggers a location report.
// By default the request is fire-and-forget; with ?wait=true the handler blocks until the
// report resolves and returns it. Either way the report outlives the HTTP request: a client
// that goes away only stops waiting.
func (s *Server) handleReportLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reports := s.locator.ReportLocation(context.WithoutCancel(ctx))

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		s.writeJSON(ctx, w, http.StatusAccepted, map[string]string{"status": "requested"})
		return
	}

	// Resolution time is up to the provider, so the server write timeout does not apply.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		s.log.DebugContext(ctx, "Failed to clear write deadline", "error", err)
	}

	select {
	case report := <-reports:
		resp := reportResponse{Outcome: report.Outcome, Message: report.Message}
		if report.Position != nil {
			resp.Latitude = &report.Position.Latitude
			resp.Longitude = &report.Position.Longitude
		}
		s.writeJSON(ctx, w, http.StatusOK, resp)
	case <-ctx.Done():
		s.log.DebugContext(ctx, "Client went away before the report resolved")
	}
}

func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, displayResponse{ID: display.TargetID, Text: s.target.Text()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s.log.DebugContext(ctx, "Performing health checks...")

	status, body := http.StatusOK, "OK"
	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			s.log.WarnContext(ctx, "Health check failed", "error", err)
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		s.log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}
