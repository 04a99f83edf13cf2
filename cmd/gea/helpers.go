// Shared helpers for gea CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/gea/pkg/geo"
)

// parseCoordinate builds a validated coordinate from two CLI arguments.
func parseCoordinate(latArg, lonArg string) (geo.Coordinate, error) {
	lat, err := parseFloat("latitude", latArg)
	if err != nil {
		return geo.Coordinate{}, err
	}
	lon, err := parseFloat("longitude", lonArg)
	if err != nil {
		return geo.Coordinate{}, err
	}
	return geo.NewCoordinate(lat, lon)
}

// parseFloat parses a numeric CLI argument, naming it in the error.
func parseFloat(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, arg)
	}
	return v, nil
}

// printJSON writes v as pretty-printed JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// formatFloat renders a float with the fewest digits that round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCoordinate renders a coordinate as "lat, lon" for text output.
func formatCoordinate(c geo.Coordinate) string {
	return formatFloat(c.Lat) + ", " + formatFloat(c.Lon)
}
