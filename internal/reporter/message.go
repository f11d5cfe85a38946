package reporter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/compass/internal/models"
)

// Status messages written to the display target.
const (
	MessageUnsupported = "Geolocation is not supported by this browser."
	MessageFailed      = "Unable to retrieve your location."
	messageLocated     = "GPS Location: Latitude %s, Longitude %s"
)

// LocatedMessage renders the message shown after a successful position request.
func LocatedMessage(coords models.Coordinates) string {
	return fmt.Sprintf(messageLocated, FormatDegrees(coords.Latitude), FormatDegrees(coords.Longitude))
}

// FormatDegrees converts v to its default string form: the shortest representation that
// round-trips, without rounding, using exponent notation only below 1e-6 or from 1e21 on.
// Negative zero renders as "0".
func FormatDegrees(v float64) string {
	const (
		minPlain = 1e-6
		maxPlain = 1e21
	)

	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= minPlain && abs < maxPlain {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits ("1e-07"); drop the padding and keep an explicit sign.
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if n > 0 {
		return mantissa + "e+" + strconv.Itoa(n)
	}
	return mantissa + "e" + strconv.Itoa(n)
}
