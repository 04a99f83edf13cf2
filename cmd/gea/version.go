// Version command for the gea CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the gea release version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gea version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gea", version)
	},
}
