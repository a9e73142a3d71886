// Package config loads gridbuilder configuration from TOML files.
//
// Every field is optional; Load fills unset values from Default(). A typical
// config file:
//
//	[grid]
//	horizontal_percent = 0.02
//	vertical_px = 20.0
//
//	[server]
//	addr = ":8080"
//
//	[store]
//	backend = "memory"
//
//	[breakpoints.mobile]
//	min_width = 0
//	mode = "stack"
//
//	[breakpoints.desktop]
//	min_width = 768
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/units"
)

// Grid holds unit-mapping and placement tunables.
type Grid struct {
	// HorizontalPercent is the container width fraction per horizontal unit.
	HorizontalPercent float64 `toml:"horizontal_percent"`

	// MinHorizontalPx clamps the horizontal unit size from below.
	MinHorizontalPx float64 `toml:"min_horizontal_px"`

	// MaxHorizontalPx clamps the horizontal unit size from above.
	MaxHorizontalPx float64 `toml:"max_horizontal_px"`

	// VerticalPx is the fixed vertical unit size in pixels.
	VerticalPx float64 `toml:"vertical_px"`

	// StackItemHeight is the fallback height for auto-stacked items.
	StackItemHeight float64 `toml:"stack_item_height"`

	// PreferredMargin is the top/left margin tried before scanning.
	PreferredMargin float64 `toml:"preferred_margin"`

	// BottomSpacing is the gap left below existing content when
	// placement falls through to the canvas bottom.
	BottomSpacing float64 `toml:"bottom_spacing"`

	// ScanMaxRows bounds the row-major free-space scan.
	ScanMaxRows int `toml:"scan_max_rows"`

	// BottomMargin is added below the lowest item when computing
	// canvas height.
	BottomMargin float64 `toml:"bottom_margin"`
}

// Server holds HTTP server settings.
type Server struct {
	// Addr is the listen address (host:port).
	Addr string `toml:"addr"`

	// ReadTimeoutSeconds bounds request reads.
	ReadTimeoutSeconds int `toml:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds response writes.
	WriteTimeoutSeconds int `toml:"write_timeout_seconds"`
}

// ReadTimeout returns the read timeout as a duration.
func (s Server) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (s Server) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// Store selects and configures the canvas persistence backend.
type Store struct {
	// Backend is one of "memory", "file", "redis", "mongo".
	Backend string `toml:"backend"`

	// Dir is the base directory for the file backend.
	Dir string `toml:"dir"`

	// RedisAddr is the Redis server address.
	RedisAddr string `toml:"redis_addr"`

	// RedisPassword is the Redis password.
	RedisPassword string `toml:"redis_password"`

	// RedisDB is the Redis database number.
	RedisDB int `toml:"redis_db"`

	// MongoURI is the MongoDB connection string.
	MongoURI string `toml:"mongo_uri"`

	// MongoDatabase is the MongoDB database name.
	MongoDatabase string `toml:"mongo_database"`
}

// Breakpoint configures one named viewport threshold.
type Breakpoint struct {
	MinWidth    float64 `toml:"min_width"`
	Mode        string  `toml:"mode"`
	InheritFrom string  `toml:"inherit_from"`
}

// Config is the root configuration document.
type Config struct {
	Grid        Grid                  `toml:"grid"`
	Server      Server                `toml:"server"`
	Store       Store                 `toml:"store"`
	Breakpoints map[string]Breakpoint `toml:"breakpoints"`
}

// Default returns the configuration used when no file or field is provided.
func Default() *Config {
	return &Config{
		Grid: Grid{
			HorizontalPercent: units.DefaultHorizontalPercent,
			MinHorizontalPx:   units.DefaultMinHorizontalPx,
			MaxHorizontalPx:   units.DefaultMaxHorizontalPx,
			VerticalPx:        units.DefaultVerticalPx,
			StackItemHeight:   6,
			PreferredMargin:   2,
			BottomSpacing:     2,
			ScanMaxRows:       200,
			BottomMargin:      5,
		},
		Server: Server{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 30,
		},
		Store: Store{
			Backend:       "memory",
			MongoDatabase: "gridbuilder",
		},
		Breakpoints: map[string]Breakpoint{
			"mobile":  {MinWidth: 0, Mode: "stack"},
			"tablet":  {MinWidth: 768, Mode: "inherit", InheritFrom: "desktop"},
			"desktop": {MinWidth: 1024, Mode: "manual"},
		},
	}
}

// Load reads a TOML config file and overlays it on Default().
// An empty path returns Default() unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file %q", path)
	}

	// A breakpoint table in the file replaces the default set wholesale;
	// decoding into the pre-populated map would merge them instead.
	defaultBps := cfg.Breakpoints
	cfg.Breakpoints = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %q", path)
	}
	if len(cfg.Breakpoints) == 0 {
		cfg.Breakpoints = defaultBps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and breakpoint consistency.
func (c *Config) Validate() error {
	if c.Grid.HorizontalPercent <= 0 || c.Grid.HorizontalPercent > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.horizontal_percent must be in (0, 1], got %g", c.Grid.HorizontalPercent)
	}
	if c.Grid.MinHorizontalPx <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.min_horizontal_px must be positive, got %g", c.Grid.MinHorizontalPx)
	}
	if c.Grid.MaxHorizontalPx < c.Grid.MinHorizontalPx {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.max_horizontal_px (%g) must be >= grid.min_horizontal_px (%g)", c.Grid.MaxHorizontalPx, c.Grid.MinHorizontalPx)
	}
	if c.Grid.VerticalPx <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.vertical_px must be positive, got %g", c.Grid.VerticalPx)
	}
	if c.Grid.ScanMaxRows <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.scan_max_rows must be positive, got %d", c.Grid.ScanMaxRows)
	}

	switch c.Store.Backend {
	case "memory", "file", "redis", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "store.backend must be one of memory, file, redis, mongo; got %q", c.Store.Backend)
	}
	if c.Store.Backend == "redis" && c.Store.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store.redis_addr is required for the redis backend")
	}
	if c.Store.Backend == "mongo" && c.Store.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store.mongo_uri is required for the mongo backend")
	}

	if len(c.Breakpoints) > 0 {
		if err := c.GridBreakpoints().Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GridBreakpoints converts the configured breakpoints to the grid model.
func (c *Config) GridBreakpoints() grid.Breakpoints {
	bps := make(grid.Breakpoints, len(c.Breakpoints))
	for name, bp := range c.Breakpoints {
		bps[name] = grid.Breakpoint{
			MinWidth:    bp.MinWidth,
			Mode:        grid.LayoutMode(bp.Mode),
			InheritFrom: bp.InheritFrom,
		}
	}
	return bps
}

// MapperOptions converts the grid table to unit-mapper options.
func (c *Config) MapperOptions() units.Options {
	return units.Options{
		HorizontalPercent: c.Grid.HorizontalPercent,
		MinHorizontalPx:   c.Grid.MinHorizontalPx,
		MaxHorizontalPx:   c.Grid.MaxHorizontalPx,
		VerticalPx:        c.Grid.VerticalPx,
	}
}
