package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucidworks/gridbuilder/pkg/vizgraph"
)

// visualizeCommand creates the visualize command for cascade diagrams.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Render the breakpoint cascade as a diagram",
		Long: `Render the breakpoint cascade as a diagram.

Each configured breakpoint becomes a node; inherit relationships become
edges. The largest breakpoint is highlighted and stack-mode breakpoints
are dashed. Useful for understanding why a breakpoint resolves the way
it does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runVisualize(cmd, output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "cascade.svg", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", true, "include min width and mode in labels")
	return cmd
}

func (c *CLI) runVisualize(cmd *cobra.Command, output, format string, detailed bool) error {
	ctx := cmd.Context()
	eng, _, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Store().Close()

	if format == "" {
		format = formatFromPath(output)
	}

	dot := vizgraph.ToDOT(eng.Breakpoints(), vizgraph.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = vizgraph.RenderSVG(dot)
	case "png":
		data, err = vizgraph.RenderPNG(dot)
	default:
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, dot)", format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("rendered cascade diagram")
	printFile(output)
	return nil
}

func formatFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "png"
	case strings.HasSuffix(path, ".dot"):
		return "dot"
	default:
		return "svg"
	}
}
