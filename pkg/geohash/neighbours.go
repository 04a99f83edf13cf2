package geohash

import (
	"fmt"
	"strings"
)

// compoundDirections lists all 8 compass directions Neighbour accepts.
var compoundDirections = []Direction{
	NorthWest, North, NorthEast,
	West, East,
	SouthWest, South, SouthEast,
}

// Neighbour returns the neighbouring cell in any of the 8 compass
// directions. Cardinal directions delegate to Adjacent; diagonals compose
// two cardinal steps with the north/south step applied first.
func Neighbour(gh string, dir Direction) (string, error) {
	dir = Direction(strings.ToLower(string(dir)))
	switch dir {
	case North, South, East, West:
		return Adjacent(gh, dir)
	case NorthWest, NorthEast, SouthWest, SouthEast:
		vertical, err := Adjacent(gh, dir[:1])
		if err != nil {
			return "", err
		}
		return Adjacent(vertical, dir[1:])
	default:
		return "", fmt.Errorf("neighbour: unknown direction %q: %w", dir, ErrInvalidArgument)
	}
}

// Neighbours returns all 8 neighbouring cells keyed by direction.
func Neighbours(gh string) (map[Direction]string, error) {
	out := make(map[Direction]string, len(compoundDirections))
	for _, dir := range compoundDirections {
		adj, err := Neighbour(gh, dir)
		if err != nil {
			return nil, err
		}
		out[dir] = adj
	}
	return out, nil
}
