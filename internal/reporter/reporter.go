// Package reporter resolves the current position through a location provider and
// writes a human-readable status message to a display sink.
package reporter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/compass/internal/location"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/google/uuid"
)

// Outcome is the terminal state of a single report.
type Outcome string

const (
	OutcomeSucceeded   Outcome = "succeeded"
	OutcomeFailed      Outcome = "failed"
	OutcomeUnsupported Outcome = "unsupported"
)

// ErrEmptyPosition is recorded when a provider reports neither a position nor an error.
var ErrEmptyPosition = errors.New("provider returned no position")

// Report is the resolved result of one ReportLocation call.
type Report struct {
	Outcome  Outcome             // Terminal state of the request.
	Position *models.Coordinates // Resolved position, set only when Outcome is OutcomeSucceeded.
	Err      error               // Cause of a failed request, never shown to the user.
	Message  string              // Text written to the sink.
}

// Sink receives status messages. Each message replaces the previous one.
type Sink interface {
	Show(msg string)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(msg string)

// Show calls f(msg).
func (f SinkFunc) Show(msg string) { f(msg) }

// Reporter turns position requests into display messages.
type Reporter struct {
	log          *slog.Logger
	provider     location.Provider
	providerName string
	sink         Sink
	metrics      *metrics.Metrics
}

// New creates a Reporter. providerName is only used to label metrics.
func New(
	log *slog.Logger,
	provider location.Provider,
	providerName string,
	sink Sink,
	metrics *metrics.Metrics,
) *Reporter {
	return &Reporter{
		log:          log,
		provider:     provider,
		providerName: providerName,
		sink:         sink,
		metrics:      metrics,
	}
}

// ReportLocation requests the current position and writes the resulting message to the sink.
//
// The returned channel delivers exactly one Report and is then closed. When the provider has no
// location capability the report is resolved before ReportLocation returns and the provider is
// never asked for a position. Otherwise the request runs in its own goroutine.
//
// Calls are independent: concurrent requests are neither merged nor ordered, and whichever
// completes last owns the sink. ctx is handed to the provider as is; callers that want a
// request to outlive them should detach it with context.WithoutCancel.
func (r *Reporter) ReportLocation(ctx context.Context) <-chan Report {
	log := r.log.With("request_id", uuid.NewString())
	out := make(chan Report, 1)

	if !r.provider.Available() {
		out <- r.complete(ctx, log, Report{Outcome: OutcomeUnsupported, Message: MessageUnsupported})
		close(out)
		return out
	}

	log.DebugContext(ctx, "Requesting current position", "provider", r.providerName)
	r.metrics.RequestsInFlight.Inc()

	go func() {
		defer close(out)

		startTime := time.Now()
		coords, err := r.provider.CurrentPosition(ctx)
		r.metrics.RequestSeconds.WithLabelValues(r.providerName).Observe(time.Since(startTime).Seconds())
		r.metrics.RequestsInFlight.Dec()

		out <- r.complete(ctx, log, resolve(coords, err))
	}()

	return out
}

// resolve maps a provider response onto a report.
func resolve(coords *models.Coordinates, err error) Report {
	if err == nil && coords == nil {
		err = ErrEmptyPosition
	}
	if err != nil {
		return Report{Outcome: OutcomeFailed, Err: err, Message: MessageFailed}
	}

	return Report{Outcome: OutcomeSucceeded, Position: coords, Message: LocatedMessage(*coords)}
}

// complete writes the report to the sink and records it.
func (r *Reporter) complete(ctx context.Context, log *slog.Logger, report Report) Report {
	r.sink.Show(report.Message)
	r.metrics.Reports.WithLabelValues(string(report.Outcome)).Inc()

	switch report.Outcome {
	case OutcomeFailed:
		r.metrics.ProviderErrors.Inc()
		log.WarnContext(ctx, "Failed to retrieve position", "provider", r.providerName, "error", report.Err)
	case OutcomeUnsupported:
		log.InfoContext(ctx, "Location capability is not available", "provider", r.providerName)
	case OutcomeSucceeded:
		log.DebugContext(ctx, "Position retrieved",
			"provider", r.providerName,
			"lat", report.Position.Latitude,
			"lon", report.Position.Longitude)
	}

	return report
}
