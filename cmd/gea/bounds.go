// Bounds command prints the exact rectangle a geohash denotes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gea/pkg/geohash"
)

var boundsCmd = &cobra.Command{
	Use:   "bounds <geohash>",
	Short: "Print the southwest/northeast corners of a geohash cell",
	Long: `Bounds returns the exact rectangle the geohash denotes.

Example:
  gea bounds sr2yk`,
	Args: cobra.ExactArgs(1),
	RunE: runBounds,
}

func runBounds(cmd *cobra.Command, args []string) error {
	box, err := geohash.Bounds(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(box)
	}
	fmt.Println("sw:", formatCoordinate(box.SW))
	fmt.Println("ne:", formatCoordinate(box.NE))
	return nil
}
