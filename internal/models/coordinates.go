package models

// Coordinates represents a single position reading defined by its latitude and longitude in degrees.
type Coordinates struct {
	Latitude  float64 // Latitude of the position, -90..90.
	Longitude float64 // Longitude of the position, -180..180.
}
