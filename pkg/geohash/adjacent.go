package geohash

import (
	"fmt"
	"strings"
)

// Direction identifies a compass direction on the cell grid. The four
// cardinal values are primitive; the diagonals are composed from two
// cardinal steps by Neighbour.
type Direction string

// Compass directions.
const (
	North     Direction = "n"
	South     Direction = "s"
	East      Direction = "e"
	West      Direction = "w"
	NorthEast Direction = "ne"
	NorthWest Direction = "nw"
	SouthEast Direction = "se"
	SouthWest Direction = "sw"
)

// neighbourTable gives, per cardinal direction and cell parity, the
// permutation of the alphabet whose index of the current last character is
// the digit of the last character after one step in that direction.
// Parity is len(geohash) mod 2: the alternating interleave starts on
// longitude, so the axis the final character's low bits split depends on
// the string length.
var neighbourTable = map[Direction][2]string{
	North: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
	South: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
	East:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
	West:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
}

// borderTable lists, per cardinal direction and parity, the last
// characters sitting on the edge of their parent cell in that direction.
// Stepping over such an edge ripples into the parent prefix.
var borderTable = map[Direction][2]string{
	North: {"prxz", "bcfguvyz"},
	South: {"028b", "0145hjnp"},
	East:  {"bcfguvyz", "prxz"},
	West:  {"0145hjnp", "028b"},
}

// Adjacent returns the geohash of the touching cell in the given cardinal
// direction, at the same precision as the input. It operates purely on the
// string: the last character is remapped through the neighbour table, and
// when it lies on the parent cell's border the parent prefix is adjusted
// recursively. At the poles and the antimeridian the recursion bottoms out
// at the empty prefix and the result wraps within the top-level cell; that
// is a property of the base-32 grid, not an error.
//
// Direction must be one of North, South, East, West (case-insensitive);
// diagonals are rejected with ErrInvalidArgument.
func Adjacent(gh string, dir Direction) (string, error) {
	if gh == "" {
		return "", fmt.Errorf("adjacent: empty geohash: %w", ErrInvalidArgument)
	}
	dir = Direction(strings.ToLower(string(dir)))
	if _, ok := neighbourTable[dir]; !ok {
		return "", fmt.Errorf("adjacent: direction %q is not cardinal: %w", dir, ErrInvalidArgument)
	}
	out, err := adjacent(strings.ToLower(gh), dir)
	if err != nil {
		return "", fmt.Errorf("adjacent: %w", err)
	}
	return out, nil
}

// adjacent assumes a non-empty lower-case hash and a valid cardinal
// direction. Recursion depth is bounded by len(gh): the parent strictly
// shortens each call and the empty parent stops propagation.
func adjacent(gh string, dir Direction) (string, error) {
	last := gh[len(gh)-1]
	parent := gh[:len(gh)-1]
	parity := len(gh) % 2

	if parent != "" && strings.IndexByte(borderTable[dir][parity], last) >= 0 {
		shifted, err := adjacent(parent, dir)
		if err != nil {
			return "", err
		}
		parent = shifted
	}

	pos := strings.IndexByte(neighbourTable[dir][parity], last)
	if pos < 0 {
		// The neighbour strings permute the full alphabet, so a miss
		// means the input character was never a geohash digit.
		return "", fmt.Errorf("%q: %w", last, ErrInvalidCharacter)
	}
	return parent + string(Alphabet[pos]), nil
}
