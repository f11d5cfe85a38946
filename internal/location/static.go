package location

import (
	"context"

	"github.com/UnknownOlympus/compass/internal/models"
)

// StaticProvider always reports the same configured position.
type StaticProvider struct {
	coords models.Coordinates
}

// NewStaticProvider returns a provider fixed at the given latitude and longitude.
func NewStaticProvider(latitude, longitude float64) *StaticProvider {
	return &StaticProvider{coords: models.Coordinates{Latitude: latitude, Longitude: longitude}}
}

// Available always returns true.
func (sp *StaticProvider) Available() bool { return true }

// CurrentPosition returns a copy of the configured position.
func (sp *StaticProvider) CurrentPosition(_ context.Context) (*models.Coordinates, error) {
	coords := sp.coords
	return &coords, nil
}

// UnavailableProvider models a host without any location capability.
type UnavailableProvider struct{}

// Available always returns false.
func (UnavailableProvider) Available() bool { return false }

// CurrentPosition always fails with ErrUnavailable.
func (UnavailableProvider) CurrentPosition(_ context.Context) (*models.Coordinates, error) {
	return nil, ErrUnavailable
}
