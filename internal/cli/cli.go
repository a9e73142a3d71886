// Package cli implements the gridbuilder command-line interface.
//
// This package provides commands for placing and moving canvas items,
// resolving layouts for viewport widths, validating canvas documents,
// visualizing the breakpoint cascade, and serving the HTTP API. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - resolve: Compute effective item layouts for a viewport width
//   - place: Add an item to a canvas with automatic free-space search
//   - move/resize: Edit item geometry at one breakpoint
//   - validate: Check a canvas document for out-of-range geometry
//   - visualize: Render the breakpoint cascade as SVG or PNG
//   - preview: Interactive canvas preview across breakpoints
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lucidworks/gridbuilder/pkg/buildinfo"
	"github.com/lucidworks/gridbuilder/pkg/config"
	"github.com/lucidworks/gridbuilder/pkg/engine"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "gridbuilder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the --config flag value; empty means defaults.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridbuilder resolves responsive canvas layouts",
		Long:         `Gridbuilder is a layout engine for multi-breakpoint visual canvases: it places items on a 50-unit grid, resolves their effective geometry per viewport width, and serves the result over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "path to config file (TOML)")

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Engine Factory
// =============================================================================

// loadConfig reads the --config file, or the XDG default when present.
func (c *CLI) loadConfig() (*config.Config, error) {
	path := c.ConfigPath
	if path == "" {
		if p, err := defaultConfigPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}
	return config.Load(path)
}

// newEngine builds an engine from the loaded configuration. The CLI defaults
// to the file store so canvases survive between invocations.
func (c *CLI) newEngine(ctx context.Context) (*engine.Engine, *config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if c.ConfigPath == "" && cfg.Store.Backend == "memory" {
		cfg.Store.Backend = "file"
	}
	eng, err := engine.FromConfig(ctx, cfg, c.Logger)
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// defaultConfigPath returns the config location using the XDG standard
// (~/.config/gridbuilder/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
