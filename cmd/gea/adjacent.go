// Adjacent command steps one cell in a cardinal direction.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gea/pkg/geohash"
)

var adjacentCmd = &cobra.Command{
	Use:   "adjacent <geohash> <n|s|e|w>",
	Short: "Print the adjacent geohash in a cardinal direction",
	Long: `Adjacent returns the geohash of the touching cell in the given
cardinal direction, at the same precision as the input.

Example:
  gea adjacent sr2yk3bsm n`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjacent,
}

func runAdjacent(cmd *cobra.Command, args []string) error {
	adj, err := geohash.Adjacent(args[0], geohash.Direction(args[1]))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]string{"geohash": adj})
	}
	fmt.Println(adj)
	return nil
}
