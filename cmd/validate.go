package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planar/codec"
	"planar/scene"
	"planar/ui"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a scene file's structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := codec.LoadDocument(args[0])
			if err != nil {
				return err
			}

			if err := codec.Validate(doc); err != nil {
				ui.Bad.Printf("invalid: %v\n", err)
				return fmt.Errorf("validation failed")
			}

			// A structurally valid document can still carry entries this
			// build cannot restore (unknown types, bad fields).
			_, report, err := codec.Decode(doc, scene.DefaultRegistry())
			if err != nil {
				return err
			}
			if !report.Clean() {
				for _, d := range report.Components {
					ui.Warn.Printf("component %d would be skipped: %s\n", d.Index, d.Reason)
				}
				for _, d := range report.Connections {
					ui.Warn.Printf("connection %d would be skipped: %s\n", d.Index, d.Reason)
				}
			}

			ui.Good.Printf("ok: %d component(s), %d connection(s)\n",
				len(doc.Components), len(doc.Connections))
			return nil
		},
	}
}
