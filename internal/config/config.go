package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the location service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port of the HTTP server (trigger, display stream, health and metrics).
// - Provider: Which location capability backs the reporter and how to reach it.
// - Database: Configuration settings for the PostgreSQL database (database provider only).
type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	Port     int            // Port is the HTTP server port.
	Provider ProviderConfig // Provider holds the location provider configuration
	Database PostgresConfig // Database holds the postgres database configuration
}

// ProviderConfig selects and parameterizes the location provider.
type ProviderConfig struct {
	Type      string  // google, nominatim, visicom, database, static or none.
	APIKey    string  // API key for Google and Visicom.
	Query     string  // Place query for Nominatim and Visicom.
	DeviceID  string  // Tracked device for the database provider.
	RateLimit int     // Requests per second to external APIs.
	Latitude  float64 // Fixed latitude for the static provider.
	Longitude float64 // Fixed longitude for the static provider.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration and panics when a value cannot be parsed.
//
// Sources, lowest precedence first: built-in defaults, the YAML file named by
// COMPASS_CONFIG, a .env file in the working directory, and COMPASS_* environment
// variables (COMPASS_PROVIDER_TYPE sets provider.type).
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path, ok := v.Get("config").(string); ok && path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		panic("failed to parse port for http server from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("provider.rate_limit"))
	if err != nil {
		panic("failed to parse provider rate limit from configuration, must be an integer types")
	}

	latitude, err := strconv.ParseFloat(v.GetString("provider.latitude"), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		panic("failed to parse static latitude from configuration, must be within -90..90")
	}

	longitude, err := strconv.ParseFloat(v.GetString("provider.longitude"), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		panic("failed to parse static longitude from configuration, must be within -180..180")
	}

	return &Config{
		Env:  v.GetString("env"),
		Port: port,
		Provider: ProviderConfig{
			Type:      strings.ToLower(v.GetString("provider.type")),
			APIKey:    v.GetString("provider.api_key"),
			Query:     v.GetString("provider.query"),
			DeviceID:  v.GetString("provider.device_id"),
			RateLimit: rateLimit,
			Latitude:  latitude,
			Longitude: longitude,
		},
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("config", "")
	v.SetDefault("env", "production")
	v.SetDefault("port", "8080")
	v.SetDefault("provider.type", "nominatim")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.query", "")
	v.SetDefault("provider.device_id", "")
	v.SetDefault("provider.rate_limit", "1")
	v.SetDefault("provider.latitude", "0")
	v.SetDefault("provider.longitude", "0")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db_name", "")

	v.SetEnvPrefix("COMPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
