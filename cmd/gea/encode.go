// Encode command turns a coordinate into a geohash.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gea/pkg/geohash"
)

var encodePrecision int

var encodeCmd = &cobra.Command{
	Use:   "encode <lat> <lon>",
	Short: "Encode a coordinate into a geohash",
	Long: `Encode converts a latitude/longitude pair into a geohash string.

The geohash length comes from --precision, falling back to the
default_precision config key.

Example:
  gea encode 41.890251 12.492373
  gea encode 41.890251 12.492373 --precision 5`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().IntVar(&encodePrecision, "precision", 0, "geohash length (default: default_precision config key)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	coord, err := parseCoordinate(args[0], args[1])
	if err != nil {
		return err
	}

	precision := encodePrecision
	if precision == 0 {
		precision = cfg.GetInt(cfgKeyPrecision)
	}

	hash, err := geohash.Encode(coord, precision)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]string{"geohash": hash})
	}
	fmt.Println(hash)
	return nil
}
