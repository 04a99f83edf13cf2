package geodesy

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// Bearing returns the initial bearing in degrees, [0, 360), of the
// great-circle path from a to b.
func Bearing(a, b geo.Coordinate) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	lat1, lon1 := radians(a.Lat), radians(a.Lon)
	lat2, lon2 := radians(b.Lat), radians(b.Lon)

	deltaLon := lon2 - lon1
	cosLat2 := math.Cos(lat2)
	y := math.Sin(deltaLon) * cosLat2
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*cosLat2*math.Cos(deltaLon)

	brng := degrees(math.Atan2(y, x))
	if brng < 0 {
		brng += 360
	}
	return brng, nil
}

// Destination returns the point reached by travelling the given distance
// in meters from origin along a constant initial bearing in degrees.
func Destination(origin geo.Coordinate, distance, bearing float64) (geo.Coordinate, error) {
	if err := origin.Validate(); err != nil {
		return geo.Coordinate{}, err
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return geo.Coordinate{}, fmt.Errorf("distance %v: %w", distance, ErrDistanceRange)
	}
	if math.IsNaN(bearing) || bearing < 0 || bearing > 360 {
		return geo.Coordinate{}, fmt.Errorf("bearing %v: %w", bearing, ErrBearingRange)
	}

	lat1, lon1 := radians(origin.Lat), radians(origin.Lon)
	brng := radians(bearing)
	dr := distance / MeanRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(dr) +
		math.Cos(lat1)*math.Sin(dr)*math.Cos(brng))
	y := math.Sin(brng) * math.Sin(dr) * math.Cos(lat1)
	x := math.Cos(dr) - math.Sin(lat1)*math.Sin(lat2)
	lon2 := lon1 + math.Atan2(y, x)

	return geo.Coordinate{Lat: degrees(lat2), Lon: degrees(lon2)}, nil
}
