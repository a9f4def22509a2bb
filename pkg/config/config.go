// Package config loads dockyard configuration from TOML files.
//
// Configuration covers the layout store backend, the HTTP server address,
// drop-zone geometry, and default window sizes. All fields have sensible
// defaults; a missing config file is not an error.
//
// # Example
//
//	[store]
//	backend = "file"
//	dir = "~/.local/share/dockyard"
//
//	[server]
//	addr = ":8080"
//
//	[drop]
//	edge_fraction = 0.25
//	tab_strip_fraction = 0.12
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dockyard/pkg/dock/dropzone"
	"github.com/matzehuels/dockyard/pkg/store"
)

// Store backend names accepted in [StoreConfig.Backend].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config is the top-level dockyard configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Drop   DropConfig   `toml:"drop"`
	Window WindowConfig `toml:"window"`
}

// ServerConfig configures the layout HTTP service.
type ServerConfig struct {
	// Addr is the listen address (host:port).
	Addr string `toml:"addr"`
}

// StoreConfig selects and configures the layout store backend.
type StoreConfig struct {
	// Backend is one of "file", "redis", "mongo", or "none".
	Backend string `toml:"backend"`

	// Dir is the directory for the file backend.
	Dir string `toml:"dir"`

	// RedisURL is the connection URL for the redis backend,
	// e.g. "redis://localhost:6379/0".
	RedisURL string `toml:"redis_url"`

	// MongoURI, MongoDatabase and MongoCollection configure the mongo backend.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// DropConfig tunes drop-target resolution geometry.
type DropConfig struct {
	// EdgeFraction is the fraction of an area's extent treated as an
	// edge drop zone. Must be in (0, 0.5].
	EdgeFraction float64 `toml:"edge_fraction"`

	// TabStripFraction is the fraction of an area's height treated as
	// the tab strip. Must be in (0, 1).
	TabStripFraction float64 `toml:"tab_strip_fraction"`
}

// WindowConfig sets default window geometry.
type WindowConfig struct {
	Width       int `toml:"width"`
	Height      int `toml:"height"`
	FloatWidth  int `toml:"float_width"`
	FloatHeight int `toml:"float_height"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	dz := dropzone.DefaultConfig()
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Backend: BackendFile, MongoDatabase: "dockyard", MongoCollection: "layouts"},
		Drop: DropConfig{
			EdgeFraction:     dz.EdgeFraction,
			TabStripFraction: dz.TabStripFraction,
		},
		Window: WindowConfig{Width: 800, Height: 600, FloatWidth: 320, FloatHeight: 240},
	}
}

// Load reads a TOML config file and merges it over the defaults.
// A missing file returns the defaults without error; a malformed
// file or invalid values return an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Drop.EdgeFraction <= 0 || c.Drop.EdgeFraction > 0.5 {
		return fmt.Errorf("drop.edge_fraction must be in (0, 0.5], got %v", c.Drop.EdgeFraction)
	}
	if c.Drop.TabStripFraction <= 0 || c.Drop.TabStripFraction >= 1 {
		return fmt.Errorf("drop.tab_strip_fraction must be in (0, 1), got %v", c.Drop.TabStripFraction)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// DropzoneConfig converts the drop settings to a resolver config.
func (c Config) DropzoneConfig() dropzone.Config {
	return dropzone.Config{
		EdgeFraction:     c.Drop.EdgeFraction,
		TabStripFraction: c.Drop.TabStripFraction,
	}
}

// OpenStore opens the layout store selected by the configuration.
// The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case BackendNone:
		return store.NewNullStore(), nil
	case BackendFile:
		return store.NewFileStore(cfg.Dir)
	case BackendRedis:
		return store.NewRedisStore(cfg.RedisURL)
	case BackendMongo:
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
