package geohash

import (
	"fmt"
	"math"
	"strings"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// Bounds returns the exact southwest/northeast corners of the cell the
// geohash denotes, by replaying its bits through the same alternating
// bisection the encoder performs. Input is case-insensitive.
func Bounds(gh string) (geo.BoundingBox, error) {
	if gh == "" {
		return geo.BoundingBox{}, fmt.Errorf("bounds: empty geohash: %w", ErrInvalidArgument)
	}
	gh = strings.ToLower(gh)

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	evenBit := true
	for i := 0; i < len(gh); i++ {
		idx, err := charToDigit(gh[i])
		if err != nil {
			return geo.BoundingBox{}, fmt.Errorf("bounds: %w", err)
		}
		for n := 4; n >= 0; n-- {
			if evenBit {
				mid := (lonMin + lonMax) / 2
				if idx>>n&1 == 1 {
					lonMin = mid
				} else {
					lonMax = mid
				}
			} else {
				mid := (latMin + latMax) / 2
				if idx>>n&1 == 1 {
					latMin = mid
				} else {
					latMax = mid
				}
			}
			evenBit = !evenBit
		}
	}

	return geo.BoundingBox{
		SW: geo.Coordinate{Lat: latMin, Lon: lonMin},
		NE: geo.Coordinate{Lat: latMax, Lon: lonMax},
	}, nil
}

// Decode returns the center of the geohash cell, rounded per axis to
// floor(2 - log10(range)) decimal digits so the result does not imply more
// precision than the hash length resolves. For one- and two-character
// hashes the digit count reaches zero and the center rounds to whole
// degrees, ties to even.
func Decode(gh string) (geo.Coordinate, error) {
	box, err := Bounds(gh)
	if err != nil {
		return geo.Coordinate{}, err
	}

	center := box.Center()
	return geo.Coordinate{
		Lat: roundTo(center.Lat, centerDigits(box.NE.Lat-box.SW.Lat)),
		Lon: roundTo(center.Lon, centerDigits(box.NE.Lon-box.SW.Lon)),
	}, nil
}

// centerDigits derives the number of meaningful decimal digits from a
// cell's extent on one axis.
func centerDigits(extent float64) int {
	return int(math.Floor(2 - math.Log10(extent)))
}

// roundTo rounds v to the given number of decimal digits, ties to even.
// Negative digit counts round to tens, hundreds, and so on.
func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.RoundToEven(v*scale) / scale
}
