// Package api exposes the location reporter over HTTP: a trigger endpoint, the display
// target as JSON and as a websocket stream, and the health and metrics endpoints.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/reporter"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Locator issues location reports.
type Locator interface {
	ReportLocation(ctx context.Context) <-chan reporter.Report
}

// DisplayTarget is the shared surface reports are written to.
type DisplayTarget interface {
	Text() string
	Subscribe() (<-chan string, func())
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server wires the HTTP handlers to the reporter and the display target.
type Server struct {
	log     *slog.Logger
	locator Locator
	target  DisplayTarget
	health  HealthChecker // optional; nil means always healthy
	metrics *metrics.Metrics
	gather  prometheus.Gatherer
}

// NewServer creates a Server. health may be nil.
func NewServer(
	log *slog.Logger,
	locator Locator,
	target DisplayTarget,
	health HealthChecker,
	metrics *metrics.Metrics,
	gather prometheus.Gatherer,
) *Server {
	return &Server{
		log:     log,
		locator: locator,
		target:  target,
		health:  health,
		metrics: metrics,
		gather:  gather,
	}
}

// Router returns the HTTP routes of the service.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/location", s.handleReportLocation).Methods(http.MethodPost)
	r.HandleFunc("/api/display", s.handleDisplay).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleStream).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}
