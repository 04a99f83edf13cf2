package geodesy

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// AngleBetween returns the central angle between two coordinates in
// degrees; this is also their distance on the unit sphere.
func AngleBetween(a, b geo.Coordinate) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}
	return degrees(centralAngle(a, b)), nil
}

// centralAngle returns the angle between two validated coordinates in
// radians. The cosine is clamped before acos to absorb floating-point
// drift for near-identical and near-antipodal points.
func centralAngle(a, b geo.Coordinate) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	cos := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(radians(b.Lon)-radians(a.Lon))
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// Midpoint returns the half-way point along the great-circle path between
// two coordinates. Altitude is the mean of the two inputs.
func Midpoint(a, b geo.Coordinate) (geo.Coordinate, error) {
	if err := validatePair(a, b); err != nil {
		return geo.Coordinate{}, err
	}

	c1, err := ToCartesian(a)
	if err != nil {
		return geo.Coordinate{}, err
	}
	c2, err := ToCartesian(b)
	if err != nil {
		return geo.Coordinate{}, err
	}

	mid := FromCartesian(geo.Cartesian{
		X: (c1.X + c2.X) / 2,
		Y: (c1.Y + c2.Y) / 2,
		Z: (c1.Z + c2.Z) / 2,
	})
	mid.Alt = (a.Alt + b.Alt) / 2
	return mid, nil
}

// Interpolate returns the point lying the given fraction of the way along
// the great-circle path from a to b; fraction 0 is a, fraction 1 is b.
// Altitude is blended linearly.
func Interpolate(a, b geo.Coordinate, fraction float64) (geo.Coordinate, error) {
	if err := validatePair(a, b); err != nil {
		return geo.Coordinate{}, err
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return geo.Coordinate{}, fmt.Errorf("fraction %v: %w", fraction, ErrFractionRange)
	}

	alt := a.Alt + fraction*(b.Alt-a.Alt)

	angle := centralAngle(a, b)
	sinAngle := math.Sin(angle)
	if sinAngle == 0 {
		// Coincident (or antipodal, where the path is ambiguous):
		// the start point is the only defensible answer.
		out := a
		out.Alt = alt
		return out, nil
	}

	lat1, lon1 := radians(a.Lat), radians(a.Lon)
	lat2, lon2 := radians(b.Lat), radians(b.Lon)
	wa := math.Sin((1-fraction)*angle) / sinAngle
	wb := math.Sin(fraction*angle) / sinAngle

	x := wa*math.Cos(lat1)*math.Cos(lon1) + wb*math.Cos(lat2)*math.Cos(lon2)
	y := wa*math.Cos(lat1)*math.Sin(lon1) + wb*math.Cos(lat2)*math.Sin(lon2)
	z := wa*math.Sin(lat1) + wb*math.Sin(lat2)

	out := FromCartesian(geo.Cartesian{X: x, Y: y, Z: z})
	out.Alt = alt
	return out, nil
}

// CrossTrackDistance returns the distance in meters from point p to the
// great-circle path through origin and dest. The sign indicates the side:
// negative left of the path, positive right of it.
func CrossTrackDistance(origin, dest, p geo.Coordinate) (float64, error) {
	if err := validatePair(origin, dest); err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("third coordinate: %w", err)
	}

	d13, err := Haversine(origin, p)
	if err != nil {
		return 0, err
	}
	brng12, err := Bearing(origin, dest)
	if err != nil {
		return 0, err
	}
	brng13, err := Bearing(origin, p)
	if err != nil {
		return 0, err
	}

	return math.Asin(math.Sin(d13/MeanRadius)*
		math.Sin(radians(brng13)-radians(brng12))) * MeanRadius, nil
}

// AlongTrackDistance returns the distance in meters from origin to the
// point on the great-circle path through origin and dest closest to p.
func AlongTrackDistance(origin, dest, p geo.Coordinate) (float64, error) {
	dxt, err := CrossTrackDistance(origin, dest, p)
	if err != nil {
		return 0, err
	}
	d13, err := Haversine(origin, p)
	if err != nil {
		return 0, err
	}
	return math.Acos(math.Cos(d13/MeanRadius)/
		math.Cos(dxt/MeanRadius)) * MeanRadius, nil
}
