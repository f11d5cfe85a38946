package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/jackc/pgx/v5"
)

// Database is the subset of pgxpool.Pool used by the repository.
type Database interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface is what the service needs from the repository: the last fix of a device
// for the database provider and a ping for the health check.
type Interface interface {
	LatestPosition(ctx context.Context, deviceID string) (*models.Coordinates, error)
	Ping(ctx context.Context) error
}

// ErrNoPosition is returned when no fix has been recorded for a device.
var ErrNoPosition = errors.New("no position recorded for device")

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
