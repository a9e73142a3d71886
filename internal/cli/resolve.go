package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lucidworks/gridbuilder/pkg/engine"
)

// resolveCommand creates the resolve command for computing effective layouts.
func (c *CLI) resolveCommand() *cobra.Command {
	var width float64

	cmd := &cobra.Command{
		Use:   "resolve <canvas-id>",
		Short: "Compute effective item layouts for a viewport width",
		Long: `Compute effective item layouts for a viewport width.

The resolve command matches the viewport width against the configured
breakpoints, then walks each item's layout cascade: customized geometry
wins, stack breakpoints flow items vertically, inherit breakpoints borrow
from their target, and everything else falls back to the nearest customized
breakpoint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, args[0], width)
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 1280, "viewport width in pixels")
	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, canvasID string, width float64) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	eng, _, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Store().Close()

	prog := newProgress(logger)
	res, err := eng.ResolveCanvas(ctx, canvasID, width)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d items", len(res.Items)))

	printKeyValue("canvas", res.CanvasID)
	printKeyValue("viewport", fmt.Sprintf("%s (%gpx)", res.Viewport, res.ViewportWidth))

	if len(res.Items) == 0 {
		printDetail("canvas is empty")
		return nil
	}

	fmt.Println(resolutionTable(res))

	px, err := eng.CanvasHeightPx(ctx, canvasID, width)
	if err != nil {
		return err
	}
	printKeyValue("height", fmt.Sprintf("%.0fpx", px))
	return nil
}

func resolutionTable(res *engine.Resolution) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("ITEM", "TYPE", "SOURCE", "X", "Y", "W", "H")

	for _, it := range res.Items {
		t.Row(
			shortID(it.ItemID),
			it.Type,
			it.Source,
			fmt.Sprintf("%g", it.Layout.XOr(0)),
			fmt.Sprintf("%g", it.Layout.YOr(0)),
			fmt.Sprintf("%g", it.Layout.WidthOr(0)),
			fmt.Sprintf("%g", it.Layout.HeightOr(0)),
		)
	}
	return t.Render()
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
