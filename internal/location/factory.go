package location

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of location provider.
type ProviderType string

const (
	// ProviderTypeGoogle represents the Google Maps Geolocation API.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim place lookup.
	ProviderTypeNominatim ProviderType = "nominatim"
	// ProviderTypeVisicom represents Visicom Maps place lookup.
	ProviderTypeVisicom ProviderType = "visicom"
	// ProviderTypeDatabase represents the last fix stored for a device in PostgreSQL.
	ProviderTypeDatabase ProviderType = "database"
	// ProviderTypeStatic represents a fixed, configured position.
	ProviderTypeStatic ProviderType = "static"
	// ProviderTypeNone represents a host without location capability.
	ProviderTypeNone ProviderType = "none"
)

// ProviderConfig holds configuration for creating a location provider.
type ProviderConfig struct {
	Type      ProviderType  // Type of provider to create
	APIKey    string        // API key (Google and Visicom)
	Query     string        // Place query (Nominatim and Visicom)
	DeviceID  string        // Tracked device (database)
	Store     PositionStore // Position store (database)
	RateLimit int           // Requests per second (Google and Visicom)
	Latitude  float64       // Fixed latitude (static)
	Longitude float64       // Fixed longitude (static)
	Logger    *slog.Logger  // Logger for the provider
}

// NewProvider creates a location provider based on the provided configuration.
// Returns an error if the provider type is unsupported or if provider creation fails.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeNominatim:
		return NewNominatimProvider(config.Query, config.Logger), nil
	case ProviderTypeVisicom:
		return newVisicomProvider(config)
	case ProviderTypeDatabase:
		if config.Store == nil {
			return nil, errors.New("position store is required for database provider")
		}
		return NewDatabaseProvider(config.Store, config.DeviceID, config.Logger), nil
	case ProviderTypeStatic:
		return NewStaticProvider(config.Latitude, config.Longitude), nil
	case ProviderTypeNone:
		return UnavailableProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newGoogleProvider creates a Google Maps geolocation provider.
func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}

	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}

// newVisicomProvider creates a Visicom place lookup provider.
func newVisicomProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Visicom provider")
	}

	if config.RateLimit == 0 {
		config.RateLimit = 5
		config.Logger.Warn("Rate limit for Visicom API not set, set a default value", "value", config.RateLimit)
	}

	return NewVisicomProvider(config.APIKey, config.Query, config.RateLimit, config.Logger), nil
}
