package location

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/compass/internal/models"
)

// Provider is the location capability of the host platform.
// Available reports whether the capability exists at all; CurrentPosition resolves
// the current position once and returns an error when resolution fails for any reason
// (denied, timed out, position unavailable).
type Provider interface {
	Available() bool
	CurrentPosition(ctx context.Context) (*models.Coordinates, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrUnavailable is returned when a position is requested from a provider without the capability.
var ErrUnavailable = errors.New("location capability is not available")
