package engine

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lucidworks/gridbuilder/pkg/collision"
	"github.com/lucidworks/gridbuilder/pkg/config"
	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/store"
)

// OpenStore creates the canvas store selected by the configuration.
// Redis and Mongo backends dial out, so the context bounds connection setup.
func OpenStore(ctx context.Context, cfg config.Store) (store.CanvasStore, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(cfg.Dir)
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Backend)
	}
}

// FromConfig builds an engine from a loaded configuration, opening the
// configured store backend.
func FromConfig(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	st, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	eng, err := New(st, cfg.GridBreakpoints(), Options{
		Units: cfg.MapperOptions(),
		Search: collision.SearchOptions{
			PreferredMargin: cfg.Grid.PreferredMargin,
			BottomSpacing:   cfg.Grid.BottomSpacing,
			MaxRows:         cfg.Grid.ScanMaxRows,
		},
		StackItemHeight: cfg.Grid.StackItemHeight,
		BottomMargin:    cfg.Grid.BottomMargin,
		Logger:          logger,
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return eng, nil
}
