package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/fieldset/internal/version"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fieldset",
	Run: func(_ *cobra.Command, _ []string) {
		info := version.Get()
		fmt.Printf("fieldset version %s\n", info.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
