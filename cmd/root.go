// Package cmd wires the planar CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "planar",
	Short:   "planar — interactive 2D scene editor",
	Long:    "planar edits scenes of connectable geometric components on a pannable, zoomable canvas.",
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate("planar {{ .Version }}\n")

	rootCmd.AddCommand(
		editCmd(),
		infoCmd(),
		validateCmd(),
		newCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
