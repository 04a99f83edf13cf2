package geohash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbour(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want string
	}{
		{"north west", NorthWest, "sr2yk3bss"},
		{"north", North, "sr2yk3bst"},
		{"north east", NorthEast, "sr2yk3bsw"},
		{"west", West, "sr2yk3bsk"},
		{"east", East, "sr2yk3bsq"},
		{"south west", SouthWest, "sr2yk3bsh"},
		{"south", South, "sr2yk3bsj"},
		{"south east", SouthEast, "sr2yk3bsn"},
		{"upper case direction", Direction("NE"), "sr2yk3bsw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Neighbour("sr2yk3bsm", tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeighbours(t *testing.T) {
	got, err := Neighbours("sr2yk3bsm")
	require.NoError(t, err)

	assert.Equal(t, map[Direction]string{
		NorthWest: "sr2yk3bss",
		North:     "sr2yk3bst",
		NorthEast: "sr2yk3bsw",
		West:      "sr2yk3bsk",
		East:      "sr2yk3bsq",
		SouthWest: "sr2yk3bsh",
		South:     "sr2yk3bsj",
		SouthEast: "sr2yk3bsn",
	}, got)
}

func TestNeighboursProperties(t *testing.T) {
	for _, hash := range []string{"s", "sr2yk", "sr2yk3bsm", "u000"} {
		got, err := Neighbours(hash)
		require.NoError(t, err)

		assert.Len(t, got, 8, "hash %q", hash)

		seen := make(map[string]bool, len(got))
		for dir, adj := range got {
			assert.Len(t, adj, len(hash), "hash %q dir %q", hash, dir)
			seen[adj] = true
		}
		assert.Len(t, seen, 8, "hash %q neighbours must be distinct", hash)
	}
}

func TestNeighbourErrors(t *testing.T) {
	_, err := Neighbour("", North)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Neighbour("sr2yk", Direction("ns"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Neighbours("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
