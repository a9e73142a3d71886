package cli

import (

	"github.com/spf13/cobra"
)

// placeCommand creates the place command for adding items to a canvas.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		itemType string
		width    float64
		height   float64
	)

	cmd := &cobra.Command{
		Use:   "place <canvas-id>",
		Short: "Add an item to a canvas with automatic placement",
		Long: `Add an item to a canvas with automatic placement.

The place command searches the canvas for free space at the largest
breakpoint: first the preferred top-left anchor, then a top-to-bottom
row scan, finally a slot below all existing content. The requested size
is clamped to the item size limits and the canvas width. Every other
breakpoint gets an initial layout matching its mode (stack, inherit,
or manual).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, _, err := c.newEngine(ctx)
			if err != nil {
				return err
			}
			defer eng.Store().Close()

			it, err := eng.PlaceItem(ctx, args[0], itemType, width, height)
			if err != nil {
				printError("placement failed")
				return err
			}

			largest := eng.Breakpoints().Largest()
			l := it.Layout(largest)
			printSuccess("placed %s item %s", itemType, StyleHighlight.Render(shortID(it.ID)))
			printDetail("at (%g, %g) size %gx%g on %s", l.XOr(0), l.YOr(0), l.WidthOr(0), l.HeightOr(0), largest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&itemType, "type", "t", "box", "item type label")
	cmd.Flags().Float64VarP(&width, "width", "w", 10, "item width in grid units")
	cmd.Flags().Float64Var(&height, "height", 6, "item height in grid units")
	return cmd
}

// moveCommand creates the move command for repositioning an item.
func (c *CLI) moveCommand() *cobra.Command {
	var (
		breakpoint string
		x, y       float64
	)

	cmd := &cobra.Command{
		Use:   "move <canvas-id> <item-id>",
		Short: "Move an item at one breakpoint",
		Long: `Move an item at one breakpoint.

The position is clamped inside the canvas and the breakpoint is marked
customized, so it stops inheriting geometry from other breakpoints.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, _, err := c.newEngine(ctx)
			if err != nil {
				return err
			}
			defer eng.Store().Close()

			l, err := eng.MoveItem(ctx, args[0], args[1], breakpoint, x, y)
			if err != nil {
				return err
			}
			printSuccess("moved item to (%g, %g) on %s", l.XOr(0), l.YOr(0), breakpoint)
			return nil
		},
	}

	cmd.Flags().StringVarP(&breakpoint, "breakpoint", "b", "", "breakpoint to customize (required)")
	cmd.Flags().Float64VarP(&x, "x", "x", 0, "new x position in grid units")
	cmd.Flags().Float64VarP(&y, "y", "y", 0, "new y position in grid units")
	_ = cmd.MarkFlagRequired("breakpoint")
	return cmd
}

// resizeCommand creates the resize command for changing an item's size.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		breakpoint string
		width      float64
		height     float64
	)

	cmd := &cobra.Command{
		Use:   "resize <canvas-id> <item-id>",
		Short: "Resize an item at one breakpoint",
		Long: `Resize an item at one breakpoint.

The size is clamped to the item size limits and the canvas width, the
position is re-clamped so the item stays inside the canvas, and the
breakpoint is marked customized.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, _, err := c.newEngine(ctx)
			if err != nil {
				return err
			}
			defer eng.Store().Close()

			l, err := eng.ResizeItem(ctx, args[0], args[1], breakpoint, width, height)
			if err != nil {
				return err
			}
			printSuccess("resized item to %gx%g on %s", l.WidthOr(0), l.HeightOr(0), breakpoint)
			if l.WidthOr(0) != width || l.HeightOr(0) != height {
				printWarning("requested %gx%g was clamped", width, height)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&breakpoint, "breakpoint", "b", "", "breakpoint to customize (required)")
	cmd.Flags().Float64VarP(&width, "width", "w", 10, "new width in grid units")
	cmd.Flags().Float64Var(&height, "height", 6, "new height in grid units")
	_ = cmd.MarkFlagRequired("breakpoint")
	return cmd
}
