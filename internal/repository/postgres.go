package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDatabase opens a connection pool to PostgreSQL and verifies it with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     name,
		RawQuery: "sslmode=disable",
	}

	pool, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// LatestPosition returns the most recent fix recorded for the given device.
// ErrNoPosition is returned when the device has never reported a position.
func (r *Repository) LatestPosition(ctx context.Context, deviceID string) (*models.Coordinates, error) {
	query := `
		SELECT latitude, longitude
		FROM public.device_positions
		WHERE device_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1;
	`

	var coords models.Coordinates
	err := r.db.QueryRow(ctx, query, deviceID).Scan(&coords.Latitude, &coords.Longitude)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoPosition
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest position: %w", err)
	}

	r.log.DebugContext(ctx, "Latest position has been received.",
		"device", deviceID, "lat", coords.Latitude, "lon", coords.Longitude)

	return &coords, nil
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
