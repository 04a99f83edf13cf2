package geohash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name string
		hash string
		dir  Direction
		want string
	}{
		{"north", "sr2yk3bsm", North, "sr2yk3bst"},
		{"south", "sr2yk3bsm", South, "sr2yk3bsj"},
		{"west", "sr2yk3bsm", West, "sr2yk3bsk"},
		{"east", "sr2yk3bsm", East, "sr2yk3bsq"},
		{"upper case direction", "sr2yk3bsm", Direction("N"), "sr2yk3bst"},
		{"upper case geohash", "SR2YK3BSM", North, "sr2yk3bst"},
		{"short hash", "sr2yk", North, "sr2ys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Adjacent(tt.hash, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdjacentBorderPropagation(t *testing.T) {
	// "u000" sits on the western edge of every ancestor up to "u";
	// stepping west must ripple through the whole prefix.
	got, err := Adjacent("u000", West)
	require.NoError(t, err)
	assert.Equal(t, "gbpb", got)
}

func TestAdjacentWrapsAtGlobeEdge(t *testing.T) {
	// "z" is a top-level cell on the pole row; stepping north has no
	// parent to ripple into, so the result wraps within the top-level
	// grid rather than failing.
	got, err := Adjacent("z", North)
	require.NoError(t, err)
	assert.Equal(t, "p", got)
}

func TestAdjacentInvertibility(t *testing.T) {
	// Away from the poles and the antimeridian, stepping out and back
	// returns the original cell.
	for _, hash := range []string{"sr2yk3bsm", "sr2yk", "u0847", "kd3ybyu"} {
		for _, pair := range [][2]Direction{{North, South}, {South, North}, {East, West}, {West, East}} {
			out, err := Adjacent(hash, pair[0])
			require.NoError(t, err)
			back, err := Adjacent(out, pair[1])
			require.NoError(t, err)
			assert.Equal(t, hash, back, "hash %q dir %q then %q", hash, pair[0], pair[1])
		}
	}
}

func TestAdjacentSameLength(t *testing.T) {
	for _, hash := range []string{"s", "sr", "sr2yk", "sr2yk3bsm"} {
		for _, dir := range []Direction{North, South, East, West} {
			got, err := Adjacent(hash, dir)
			require.NoError(t, err)
			assert.Len(t, got, len(hash))
		}
	}
}

func TestAdjacentErrors(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		dir     Direction
		wantErr error
	}{
		{"empty geohash", "", North, ErrInvalidArgument},
		{"unknown direction", "sr2yk", Direction("x"), ErrInvalidArgument},
		{"diagonal direction rejected", "sr2yk", NorthEast, ErrInvalidArgument},
		{"empty direction", "sr2yk", Direction(""), ErrInvalidArgument},
		{"character outside alphabet", "sr2al", North, ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Adjacent(tt.hash, tt.dir)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
