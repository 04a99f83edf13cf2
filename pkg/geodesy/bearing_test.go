package geodesy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

func TestBearing(t *testing.T) {
	tests := []struct {
		name string
		from geo.Coordinate
		to   geo.Coordinate
		want float64
	}{
		{"due north", geo.Coordinate{}, geo.Coordinate{Lat: 10}, 0},
		{"due east", geo.Coordinate{}, geo.Coordinate{Lon: 10}, 90},
		{"due south", geo.Coordinate{Lat: 10}, geo.Coordinate{}, 180},
		{"due west", geo.Coordinate{Lon: 10}, geo.Coordinate{}, 270},
		{"rome to milan", rome, milan, 327.386},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bearing(tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestBearingValidation(t *testing.T) {
	_, err := Bearing(geo.Coordinate{Lat: -91}, milan)
	assert.ErrorIs(t, err, geo.ErrLatitudeRange)
}

func TestDestination(t *testing.T) {
	t.Run("zero distance is the origin", func(t *testing.T) {
		got, err := Destination(rome, 0, 45)
		require.NoError(t, err)
		assert.InDelta(t, rome.Lat, got.Lat, 1e-9)
		assert.InDelta(t, rome.Lon, got.Lon, 1e-9)
	})

	t.Run("one degree east along the equator", func(t *testing.T) {
		got, err := Destination(geo.Coordinate{}, 111195.08, 90)
		require.NoError(t, err)
		assert.InDelta(t, 0, got.Lat, 1e-6)
		assert.InDelta(t, 1, got.Lon, 1e-6)
	})

	t.Run("round trips with haversine and bearing", func(t *testing.T) {
		const meters = 10000.0
		got, err := Destination(rome, meters, 45)
		require.NoError(t, err)

		back, err := Haversine(rome, got)
		require.NoError(t, err)
		assert.InDelta(t, meters, back, 0.01)
	})

	t.Run("invalid bearing", func(t *testing.T) {
		_, err := Destination(rome, 1000, 361)
		assert.ErrorIs(t, err, ErrBearingRange)

		_, err = Destination(rome, 1000, -1)
		assert.ErrorIs(t, err, ErrBearingRange)
	})

	t.Run("invalid distance", func(t *testing.T) {
		_, err := Destination(rome, -5, 45)
		assert.ErrorIs(t, err, ErrDistanceRange)
	})

	t.Run("invalid origin", func(t *testing.T) {
		_, err := Destination(geo.Coordinate{Lon: -200}, 1000, 45)
		assert.ErrorIs(t, err, geo.ErrLongitudeRange)
	})
}
