package location

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/compass/internal/models"
)

// PositionStore returns the last fix a device reported.
type PositionStore interface {
	LatestPosition(ctx context.Context, deviceID string) (*models.Coordinates, error)
}

// DatabaseProvider reports the last known position of a tracked device.
type DatabaseProvider struct {
	store    PositionStore
	deviceID string
	log      *slog.Logger
}

// NewDatabaseProvider creates a provider reading fixes of deviceID from store.
func NewDatabaseProvider(store PositionStore, deviceID string, log *slog.Logger) *DatabaseProvider {
	return &DatabaseProvider{store: store, deviceID: strings.TrimSpace(deviceID), log: log}
}

// Available reports whether a device is configured.
func (dp *DatabaseProvider) Available() bool {
	return dp.store != nil && dp.deviceID != ""
}

// CurrentPosition returns the device's most recent fix.
func (dp *DatabaseProvider) CurrentPosition(ctx context.Context) (*models.Coordinates, error) {
	if !dp.Available() {
		return nil, ErrUnavailable
	}

	dp.log.DebugContext(ctx, "Locating using stored device fixes", "device", dp.deviceID)

	coords, err := dp.store.LatestPosition(ctx, dp.deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load position of device %s: %w", dp.deviceID, err)
	}

	return coords, nil
}
