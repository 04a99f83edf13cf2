package geodesy

import (
	"math"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// Haversine returns the great-circle distance between two coordinates in
// meters.
func Haversine(a, b geo.Coordinate) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	lat1, lon1 := radians(a.Lat), radians(a.Lon)
	lat2, lon2 := radians(b.Lat), radians(b.Lon)

	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * MeanRadius * math.Asin(math.Sqrt(h)), nil
}

// HaversineApprox returns the equirectangular approximation of the
// great-circle distance in meters. It is cheaper than Haversine and
// accurate for short distances.
func HaversineApprox(a, b geo.Coordinate) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	lat1, lon1 := radians(a.Lat), radians(a.Lon)
	lat2, lon2 := radians(b.Lat), radians(b.Lon)

	x := (lon2 - lon1) * math.Cos((lat1+lat2)/2)
	y := lat2 - lat1
	return MeanRadius * math.Sqrt(x*x+y*y), nil
}
