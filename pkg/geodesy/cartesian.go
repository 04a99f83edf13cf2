package geodesy

import (
	"math"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// ToCartesian converts a coordinate to earth-centered 3D meters on the
// mean-radius sphere. Altitude, when present, is added to the radius.
func ToCartesian(c geo.Coordinate) (geo.Cartesian, error) {
	if err := c.Validate(); err != nil {
		return geo.Cartesian{}, err
	}

	lat, lon := radians(c.Lat), radians(c.Lon)
	r := MeanRadius + c.Alt

	return geo.Cartesian{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}, nil
}

// FromCartesian converts earth-centered 3D meters back to a coordinate.
// Altitude is the distance above the mean-radius sphere and may be
// negative for points inside it.
func FromCartesian(p geo.Cartesian) geo.Coordinate {
	r := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	return geo.Coordinate{
		Lat: degrees(math.Asin(p.Z / r)),
		Lon: degrees(math.Atan2(p.Y, p.X)),
		Alt: r - MeanRadius,
	}
}
