package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/compass/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider resolves the current position through the Google Maps Geolocation API.
// Without cell tower or wifi data the API falls back to IP based geolocation.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geolocate(ctx context.Context, r *maps.GeolocationRequest) (*maps.GeolocationResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds without a location.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider initializes a new GoogleProvider with the given Google Maps client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Available returns true: the Geolocation API is reachable whenever a client was built.
func (gp *GoogleProvider) Available() bool { return true }

// CurrentPosition asks the Geolocation API for the position of the calling host.
func (gp *GoogleProvider) CurrentPosition(ctx context.Context) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Locating using Google Maps Geolocation API")

	req := maps.GeolocationRequest{ConsiderIP: true}
	result, err := gp.client.Geolocate(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geolocate: %w", err)
	}

	if result == nil {
		return nil, ErrEmptyResponse
	}

	gp.log.DebugContext(ctx, "Google Maps located host",
		"lat", result.Location.Lat,
		"lon", result.Location.Lng,
		"accuracy_m", result.Accuracy)

	return &models.Coordinates{Latitude: result.Location.Lat, Longitude: result.Location.Lng}, nil
}
