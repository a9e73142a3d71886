package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// previewCommand creates the preview command for the interactive TUI.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <canvas-id>",
		Short: "Interactively preview a canvas across breakpoints",
		Long: `Interactively preview a canvas across breakpoints.

The preview shows the resolved geometry of every item at each breakpoint,
with a sketch of the canvas drawn to scale. Use the left and right arrow
keys to switch breakpoints and watch layouts cascade, stack, and inherit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, _, err := c.newEngine(ctx)
			if err != nil {
				return err
			}
			defer eng.Store().Close()

			model, err := newPreviewModel(ctx, eng, args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}
	return cmd
}
