// Distance command computes the great-circle distance between two points.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gea/pkg/geodesy"
)

var distanceApprox bool

var distanceCmd = &cobra.Command{
	Use:   "distance <lat1> <lon1> <lat2> <lon2>",
	Short: "Great-circle distance between two points, in meters",
	Long: `Distance computes the haversine distance between two coordinates.

Use --approx for the cheaper equirectangular approximation, accurate over
short distances.

Example:
  gea distance 41.890251 12.492373 45.464211 9.191383`,
	Args: cobra.ExactArgs(4),
	RunE: runDistance,
}

func init() {
	distanceCmd.Flags().BoolVar(&distanceApprox, "approx", false, "use the equirectangular approximation")
}

func runDistance(cmd *cobra.Command, args []string) error {
	from, err := parseCoordinate(args[0], args[1])
	if err != nil {
		return err
	}
	to, err := parseCoordinate(args[2], args[3])
	if err != nil {
		return err
	}

	var meters float64
	if distanceApprox {
		meters, err = geodesy.HaversineApprox(from, to)
	} else {
		meters, err = geodesy.Haversine(from, to)
	}
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]float64{"meters": meters})
	}
	fmt.Println(formatFloat(meters))
	return nil
}
