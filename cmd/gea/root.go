// Root command for the gea CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/gea/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

// cfg holds the configuration loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "gea",
	Short: "Geohash and great-circle calculations from the command line",
	Long: `gea encodes coordinates into geohashes, decodes them back, walks the
geohash cell grid, and computes great-circle distances and projections.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// version needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}

		cfg, err = loadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(boundsCmd)
	rootCmd.AddCommand(adjacentCmd)
	rootCmd.AddCommand(neighboursCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(destinationCmd)
}
