// Destination command projects a point along a bearing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gea/pkg/geodesy"
)

var destinationCmd = &cobra.Command{
	Use:   "destination <lat> <lon> <meters> <bearing>",
	Short: "Project a point a given distance along a bearing",
	Long: `Destination computes the point reached by travelling the given
distance in meters from the origin along a constant initial bearing in
degrees.

Example:
  gea destination 41.890251 12.492373 10000 45`,
	Args: cobra.ExactArgs(4),
	RunE: runDestination,
}

func runDestination(cmd *cobra.Command, args []string) error {
	origin, err := parseCoordinate(args[0], args[1])
	if err != nil {
		return err
	}
	meters, err := parseFloat("distance", args[2])
	if err != nil {
		return err
	}
	bearing, err := parseFloat("bearing", args[3])
	if err != nil {
		return err
	}

	dest, err := geodesy.Destination(origin, meters, bearing)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(dest)
	}
	fmt.Println(formatCoordinate(dest))
	return nil
}
