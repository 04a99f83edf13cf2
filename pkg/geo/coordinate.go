package geo

import (
	"errors"
	"math"
)

// Coordinate validation errors.
var (
	ErrLatitudeRange  = errors.New("latitude must be a finite value in [-90, 90]")
	ErrLongitudeRange = errors.New("longitude must be a finite value in [-180, 180]")
	ErrAltitudeRange  = errors.New("altitude must be a finite value")
)

// Coordinate is a geographic point in WGS84 degrees. Alt is in meters and
// optional; it is zero when a caller does not supply one.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Alt float64 `json:"alt,omitempty"`
}

// NewCoordinate builds a validated Coordinate with zero altitude.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks that the coordinate is within the valid WGS84 ranges.
// NaN and infinite values are rejected along with out-of-range ones.
func (c Coordinate) Validate() error {
	if !isFinite(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return ErrLatitudeRange
	}
	if !isFinite(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return ErrLongitudeRange
	}
	if !isFinite(c.Alt) {
		return ErrAltitudeRange
	}
	return nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
