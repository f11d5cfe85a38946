//go:build integration

package repository_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/UnknownOlympus/compass/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestLatestPosition_Postgres(t *testing.T) {
	ctx := t.Context()

	ctr, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("compass"),
		postgres.WithUsername("compass"),
		postgres.WithPassword("compass"),
		postgres.WithInitScripts(filepath.Join("..", "..", "migrations", "001_device_positions.sql")),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := repository.NewDatabase(ctx, host, port.Port(), "compass", "compass", "compass")
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now()
	_, err = pool.Exec(ctx,
		`INSERT INTO public.device_positions (device_id, latitude, longitude, recorded_at)
		 VALUES ($1, $2, $3, $4), ($1, $5, $6, $7), ($8, $9, $10, $4)`,
		"terminal-7", 37.5665, 126.978, now.Add(-time.Hour),
		35.1796, 129.0756, now,
		"terminal-8", -90.0, 180.0,
	)
	require.NoError(t, err)

	repo := repository.NewRepository(pool, slog.Default())

	require.NoError(t, repo.Ping(ctx))

	coords, err := repo.LatestPosition(ctx, "terminal-7")
	require.NoError(t, err)
	assert.InDelta(t, 35.1796, coords.Latitude, 0)
	assert.InDelta(t, 129.0756, coords.Longitude, 0)

	coords, err = repo.LatestPosition(ctx, "terminal-8")
	require.NoError(t, err)
	assert.InDelta(t, -90.0, coords.Latitude, 0)
	assert.InDelta(t, 180.0, coords.Longitude, 0)

	_, err = repo.LatestPosition(ctx, "unknown")
	require.ErrorIs(t, err, repository.ErrNoPosition)
}
