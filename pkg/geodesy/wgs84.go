package geodesy

import (
	"errors"
	"fmt"
	"math"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// WGS84 spheroid parameters.
const (
	// EquatorialRadius is the WGS84 semi-major axis in meters.
	EquatorialRadius = 6378137.0
	// PolarRadius is the WGS84 semi-minor axis in meters.
	PolarRadius = 6356752.3
	// MeanRadius is the mean earth radius in meters, used by every
	// great-circle computation in this package.
	MeanRadius = (2*EquatorialRadius + PolarRadius) / 3
	// Flattening is the WGS84 flattening factor.
	Flattening = (EquatorialRadius - PolarRadius) / EquatorialRadius
)

// Argument validation errors.
var (
	ErrBearingRange  = errors.New("bearing must be in [0, 360]")
	ErrFractionRange = errors.New("fraction must be in [0, 1]")
	ErrDistanceRange = errors.New("distance must be a finite, non-negative value")
)

// SpheroidRadius returns the WGS84 spheroid radius in meters at the given
// latitude in degrees.
func SpheroidRadius(lat float64) (float64, error) {
	if err := (geo.Coordinate{Lat: lat}).Validate(); err != nil {
		return 0, err
	}
	s := math.Sin(radians(lat))
	return EquatorialRadius * (1 - Flattening*s*s), nil
}

// validatePair checks two coordinates, labelling errors with the failing
// argument.
func validatePair(a, b geo.Coordinate) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("first coordinate: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("second coordinate: %w", err)
	}
	return nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
