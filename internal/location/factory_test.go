package location_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/compass/internal/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	logger := slog.Default()

	t.Run("create Google provider successfully", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:      location.ProviderTypeGoogle,
			APIKey:    "test-api-key",
			RateLimit: 10,
			Logger:    logger,
		})

		require.NoError(t, err)
		_, ok := provider.(*location.GoogleProvider)
		assert.True(t, ok, "expected provider to be *GoogleProvider")
	})

	t.Run("create Google provider without API key fails", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:   location.ProviderTypeGoogle,
			Logger: logger,
		})

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "API key is required for Google provider")
	})

	t.Run("create Nominatim provider without API key", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:   location.ProviderTypeNominatim,
			Query:  "Kyiv",
			Logger: logger,
		})

		require.NoError(t, err)
		_, ok := provider.(*location.NominatimProvider)
		assert.True(t, ok, "expected provider to be *NominatimProvider")
		assert.True(t, provider.Available())
	})

	t.Run("create Visicom provider with default rate limit", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:   location.ProviderTypeVisicom,
			APIKey: "test-api-key",
			Query:  "Kyiv",
			Logger: logger,
		})

		require.NoError(t, err)
		_, ok := provider.(*location.VisicomProvider)
		assert.True(t, ok, "expected provider to be *VisicomProvider")
	})

	t.Run("create Visicom provider without API key fails", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:   location.ProviderTypeVisicom,
			Query:  "Kyiv",
			Logger: logger,
		})

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "API key is required for Visicom provider")
	})

	t.Run("create database provider", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:     location.ProviderTypeDatabase,
			DeviceID: "terminal-7",
			Store:    &fakeStore{},
			Logger:   logger,
		})

		require.NoError(t, err)
		_, ok := provider.(*location.DatabaseProvider)
		assert.True(t, ok, "expected provider to be *DatabaseProvider")
	})

	t.Run("create database provider without store fails", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:     location.ProviderTypeDatabase,
			DeviceID: "terminal-7",
			Logger:   logger,
		})

		require.Error(t, err)
		require.Nil(t, provider)
	})

	t.Run("create static provider", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:      location.ProviderTypeStatic,
			Latitude:  37.5665,
			Longitude: 126.978,
		})

		require.NoError(t, err)
		coords, err := provider.CurrentPosition(t.Context())
		require.NoError(t, err)
		assert.InDelta(t, 37.5665, coords.Latitude, 0)
		assert.InDelta(t, 126.978, coords.Longitude, 0)
	})

	t.Run("create unavailable provider", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{Type: location.ProviderTypeNone})

		require.NoError(t, err)
		assert.False(t, provider.Available())
	})

	t.Run("unsupported provider type", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{
			Type:   location.ProviderType("unsupported"),
			Logger: logger,
		})

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type: unsupported")
	})

	t.Run("empty provider type", func(t *testing.T) {
		provider, err := location.NewProvider(location.ProviderConfig{Logger: logger})

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type")
	})
}
