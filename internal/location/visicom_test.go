package location_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/UnknownOlympus/compass/internal/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestVisicomProvider_CurrentPosition(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	apiKey := "test-api-key"
	defaultRL := rate.NewLimiter(rate.Inf, 0)

	t.Run("successful lookup", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Contains(t, req.URL.String(), location.VisicomBaseURL)
				assert.Equal(t, "м. Київ, вул. Хрещатик, 1", req.URL.Query().Get("text"))
				assert.Equal(t, apiKey, req.URL.Query().Get("key"))
				assert.Equal(t, "1", req.URL.Query().Get("limit"))
				assert.Equal(t, "application/json", req.Header.Get("Accept"))

				return respond(http.StatusOK, `{"geo_centroid":{"coordinates":[30.5234,50.4501]}}`), nil
			},
		}

		provider := location.NewVisicomProviderWithClient(mockClient, apiKey, "м. Київ, вул. Хрещатик, 1", defaultRL, logger)
		coords, err := provider.CurrentPosition(ctx)

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 50.4501, coords.Latitude, 0.0001)
		assert.InEpsilon(t, 30.5234, coords.Longitude, 0.0001)
	})

	t.Run("empty response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return respond(http.StatusOK, `{}`), nil
			},
		}

		provider := location.NewVisicomProviderWithClient(mockClient, apiKey, "somewhere", defaultRL, logger)
		coords, err := provider.CurrentPosition(ctx)

		require.ErrorIs(t, err, location.ErrVisicomEmptyResponse)
		assert.Nil(t, coords)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return respond(http.StatusOK, `{"geo_centroid":{"coordinates":[30.5]}}`), nil
			},
		}

		provider := location.NewVisicomProviderWithClient(mockClient, apiKey, "somewhere", defaultRL, logger)
		coords, err := provider.CurrentPosition(ctx)

		require.ErrorIs(t, err, location.ErrVisicomInvalidCoords)
		assert.Nil(t, coords)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return respond(http.StatusUnauthorized, `unauthorized`), nil
			},
		}

		provider := location.NewVisicomProviderWithClient(mockClient, apiKey, "somewhere", defaultRL, logger)
		coords, err := provider.CurrentPosition(ctx)

		require.ErrorIs(t, err, location.ErrVisicomUnauthorized)
		assert.Nil(t, coords)
	})

	t.Run("unexpected status", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return respond(http.StatusBadGateway, `bad gateway`), nil
			},
		}

		provider := location.NewVisicomProviderWithClient(mockClient, apiKey, "somewhere", defaultRL, logger)
		_, err := provider.CurrentPosition(ctx)

		require.ErrorContains(t, err, "visicom API returned status 502")
	})

	t.Run("rate limit exceeded", func(t *testing.T) {
		rateCtx, cancel := context.WithCancel(context.Background())
		cancel()
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("HTTP client should not be called when rate limit blocks")
				return &http.Response{}, nil
			},
		}

		limiter := rate.NewLimiter(rate.Every(time.Second), 1)

		provider := location.NewVisicomProviderWithClient(mockClient, apiKey, "somewhere", limiter, logger)
		coords, err := provider.CurrentPosition(rateCtx)

		require.ErrorContains(t, err, "rate limit exceeded")
		assert.Nil(t, coords)
	})

	t.Run("no query configured", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("HTTP client should not be called without a query")
				return &http.Response{}, nil
			},
		}

		provider := location.NewVisicomProviderWithClient(mockClient, apiKey, "", defaultRL, logger)
		coords, err := provider.CurrentPosition(ctx)

		assert.False(t, provider.Available())
		require.ErrorIs(t, err, location.ErrUnavailable)
		assert.Nil(t, coords)
	})
}
