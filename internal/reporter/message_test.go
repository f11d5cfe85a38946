package reporter_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/reporter"
	"github.com/stretchr/testify/assert"
)

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{90, "90"},
		{-180, "-180"},
		{37.4224764, "37.4224764"},
		{-122.0842499, "-122.0842499"},
		{0.1, "0.1"},
		{0.000001, "0.000001"},
		{0.0000001, "1e-7"},
		{-0.00000015, "-1.5e-7"},
		{1e21, "1e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, reporter.FormatDegrees(tt.in), "input %v", tt.in)
	}
}

func TestLocatedMessage(t *testing.T) {
	msg := reporter.LocatedMessage(models.Coordinates{Latitude: -33.8688, Longitude: 151.2093})

	assert.Equal(t, "GPS Location: Latitude -33.8688, Longitude 151.2093", msg)
}
