// Package geo holds the geographic position type and the
// decimal-degree coordinate parser.
//
// Coordinate strings carry their sign as a trailing direction letter
// instead of a leading minus: "51.4769N", "0.0005W". A latitude must
// end in N or S, a longitude in E or W.
package geo

import (
	"fmt"
	"strconv"
)

// Axis identifies which half of a coordinate pair a value belongs to.
type Axis string

const (
	AxisLatitude  Axis = "latitude"
	AxisLongitude Axis = "longitude"
)

// InvalidCoordinateError describes a coordinate string that failed to
// parse or validate, and which axis it was parsed for.
type InvalidCoordinateError struct {
	Axis   Axis
	Value  string
	Reason string
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Axis, e.Value, e.Reason)
}

// Coordinates is a geographic position in decimal degrees. North and
// east are positive.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// directions maps a trailing direction letter to the axis it is valid
// for and the sign it applies to the magnitude.
var directions = map[byte]struct {
	axis Axis
	sign float64
}{
	'N': {AxisLatitude, 1},
	'S': {AxisLatitude, -1},
	'E': {AxisLongitude, 1},
	'W': {AxisLongitude, -1},
}

// ParseLatitude parses a decimal-degree string with a trailing N or S
// into a latitude between -90 and 90.
func ParseLatitude(value string) (float64, error) {
	return parseAxis(AxisLatitude, value, 90.0)
}

// ParseLongitude parses a decimal-degree string with a trailing E or W
// into a longitude between -180 and 180.
func ParseLongitude(value string) (float64, error) {
	return parseAxis(AxisLongitude, value, 180.0)
}

// ParseCoordinates parses a latitude and longitude pair.
func ParseCoordinates(latitude, longitude string) (Coordinates, error) {
	lat, err := ParseLatitude(latitude)
	if err != nil {
		return Coordinates{}, err
	}
	lon, err := ParseLongitude(longitude)
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

func parseAxis(axis Axis, value string, limit float64) (float64, error) {
	if len(value) < 2 {
		return 0, &InvalidCoordinateError{axis, value, "expected a number followed by a direction letter"}
	}

	direction, ok := directions[value[len(value)-1]]
	if !ok || direction.axis != axis {
		letters := "N or S"
		if axis == AxisLongitude {
			letters = "E or W"
		}
		return 0, &InvalidCoordinateError{axis, value, "direction must be " + letters}
	}

	magnitude, err := strconv.ParseFloat(value[:len(value)-1], 64)
	if err != nil {
		return 0, &InvalidCoordinateError{axis, value, "not a number"}
	}
	// The direction letter is the only sign carrier.
	if magnitude < 0 || magnitude > limit {
		return 0, &InvalidCoordinateError{axis, value, fmt.Sprintf("must be between 0 and %v degrees", limit)}
	}

	return direction.sign * magnitude, nil
}
