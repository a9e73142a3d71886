package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucidworks/gridbuilder/pkg/grid"
)

// validateCommand creates the validate command for checking canvas documents.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <canvas.json>",
		Short: "Check a canvas document for invalid geometry",
		Long: `Check a canvas document for invalid geometry.

Validation reports every out-of-range value as a human-readable message:
negative coordinates, widths or heights outside the allowed range, and
non-finite numbers. The document is never modified or silently repaired.
The command exits non-zero when problems are found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	return cmd
}

func runValidate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read canvas %s: %w", path, err)
	}

	var canvas grid.Canvas
	if err := json.Unmarshal(data, &canvas); err != nil {
		return fmt.Errorf("parse canvas %s: %w", path, err)
	}

	problems := grid.ValidateCanvas(&canvas)
	if len(problems) == 0 {
		printSuccess("%s: %d items, no problems", path, len(canvas.Items))
		return nil
	}

	printError("%s: %d problems", path, len(problems))
	for _, p := range problems {
		printDetail("%s", p)
	}
	return fmt.Errorf("canvas failed validation")
}
