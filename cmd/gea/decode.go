// Decode command turns a geohash back into its cell center.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gea/pkg/geohash"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <geohash>",
	Short: "Decode a geohash into its cell center",
	Long: `Decode returns the center of the geohash cell, rounded to the
precision the hash length actually resolves.

Example:
  gea decode sr2yk3bsm`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	center, err := geohash.Decode(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(center)
	}
	fmt.Println(formatCoordinate(center))
	return nil
}
