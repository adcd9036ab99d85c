package cmd

import (
	"github.com/spf13/cobra"

	"planar/config"
	"planar/terminal"
)

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := ""
			if len(args) > 0 {
				filename = args[0]
			}
			return terminal.Run(filename, config.Load())
		},
	}
}
