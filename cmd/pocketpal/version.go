package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is reported by both the version command and --version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pocketpal version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pocketpal", version)
	},
}
