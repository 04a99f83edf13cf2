// Neighbours command prints all 8 cells around a geohash.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gea/pkg/geohash"
)

// neighbourOrder fixes the text output ordering, north-west first, reading
// like a compass rose.
var neighbourOrder = []geohash.Direction{
	geohash.NorthWest, geohash.North, geohash.NorthEast,
	geohash.West, geohash.East,
	geohash.SouthWest, geohash.South, geohash.SouthEast,
}

var neighboursCmd = &cobra.Command{
	Use:     "neighbours <geohash>",
	Aliases: []string{"neighbors"},
	Short:   "Print all 8 neighbouring geohashes",
	Long: `Neighbours returns the geohash of every touching cell, keyed by
compass direction.

Example:
  gea neighbours sr2yk3bsm
  gea neighbours sr2yk3bsm --json`,
	Args: cobra.ExactArgs(1),
	RunE: runNeighbours,
}

func runNeighbours(cmd *cobra.Command, args []string) error {
	all, err := geohash.Neighbours(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(all)
	}
	for _, dir := range neighbourOrder {
		fmt.Printf("%-2s %s\n", dir, all[dir])
	}
	return nil
}
