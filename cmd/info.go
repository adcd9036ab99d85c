package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planar/codec"
	"planar/scene"
	"planar/ui"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, report, err := codec.Load(args[0], scene.DefaultRegistry())
			if err != nil {
				return err
			}

			ui.Brand.Printf("%s\n", args[0])
			fmt.Printf("  %d component(s), %d connection(s)\n\n",
				model.Len(), model.ConnectionCount())

			rows := make([][]string, 0, model.Len())
			for _, c := range model.Components() {
				x, y := c.Pos()
				rows = append(rows, []string{
					fmt.Sprintf("%d", c.ID()),
					c.TypeTag(),
					fmt.Sprintf("(%.1f, %.1f)", x, y),
					fmt.Sprintf("%.0f°", c.Rotation()),
					fmt.Sprintf("%.2f", c.Scale()),
				})
			}
			ui.Table([]string{"ID", "TYPE", "POSITION", "ROTATION", "SCALE"}, rows)

			if model.ConnectionCount() > 0 {
				fmt.Println()
				rows = rows[:0]
				for _, conn := range model.Connections() {
					rows = append(rows, []string{
						fmt.Sprintf("%d", conn.ID),
						fmt.Sprintf("%d → %d", conn.Source, conn.Target),
						conn.Label,
					})
				}
				ui.Table([]string{"ID", "ENDPOINTS", "LABEL"}, rows)
			}

			if !report.Clean() {
				fmt.Println()
				for _, d := range report.Components {
					ui.Warn.Printf("  skipped component %d: %s\n", d.Index, d.Reason)
				}
				for _, d := range report.Connections {
					ui.Warn.Printf("  skipped connection %d: %s\n", d.Index, d.Reason)
				}
			}
			return nil
		},
	}
}
