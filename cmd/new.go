package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planar/codec"
	"planar/scene"
	"planar/ui"
)

func newCmd() *cobra.Command {
	var empty bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a scene file with a starter layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := scene.NewModel()

			if !empty {
				circle, err := scene.NewCircle(100, 100, 30)
				if err != nil {
					return err
				}
				rect, err := scene.NewRectangle(240, 100, 60, 40)
				if err != nil {
					return err
				}
				model.Add(circle)
				model.Add(rect)
				if _, err := model.AddConnection(circle.ID(), rect.ID()); err != nil {
					return err
				}
			}

			if err := codec.Save(args[0], model); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			ui.Good.Printf("created %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&empty, "empty", false, "Create an empty scene")
	return cmd
}
