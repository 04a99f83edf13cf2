package geohash

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// Encode returns the geohash of the coordinate at the given precision
// (string length). Longitude and latitude ranges are bisected alternately,
// longitude first; every 5 bits become one output character.
func Encode(c geo.Coordinate, precision int) (string, error) {
	if err := c.Validate(); err != nil {
		return "", fmt.Errorf("encode: %w: %w", ErrInvalidArgument, err)
	}
	if precision < 1 {
		return "", fmt.Errorf("encode: precision %d must be at least 1: %w", precision, ErrInvalidArgument)
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	var sb strings.Builder
	sb.Grow(precision)

	idx, bit := 0, 0
	evenBit := true
	for sb.Len() < precision {
		if evenBit {
			mid := (lonMin + lonMax) / 2
			if c.Lon >= mid {
				idx = idx*2 + 1
				lonMin = mid
			} else {
				idx = idx * 2
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if c.Lat >= mid {
				idx = idx*2 + 1
				latMin = mid
			} else {
				idx = idx * 2
				latMax = mid
			}
		}
		evenBit = !evenBit

		bit++
		if bit == 5 {
			sb.WriteByte(Alphabet[idx])
			idx, bit = 0, 0
		}
	}

	return sb.String(), nil
}
