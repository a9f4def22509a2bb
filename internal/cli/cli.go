// Package cli implements the dockyard command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/buildinfo"
	"github.com/matzehuels/dockyard/pkg/config"
	"github.com/matzehuels/dockyard/pkg/docking"
	"github.com/matzehuels/dockyard/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "dockyard"

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

	// ConfigPath overrides the default config file location.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Dockyard manages dockable widget layouts",
		Long:         `Dockyard is a docking layout engine with tabbed areas, splitter trees, floating windows, and named perspectives stored in a pluggable layout store.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/dockyard/config.toml)")

	// Register all subcommands
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config / Store Factories
// =============================================================================

// loadConfig reads the config file, applying the file backend's default
// directory when none is configured.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.ConfigPath
	if path == "" {
		path = configPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cfg.Store.Backend == config.BackendFile && cfg.Store.Dir == "" {
		dir, err := dataDir()
		if err != nil {
			return cfg, err
		}
		cfg.Store.Dir = dir
	}
	return cfg, nil
}

// openStore opens the configured layout store.
func (c *CLI) openStore(ctx context.Context) (store.Store, config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	st, err := config.OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, cfg, err
	}
	return st, cfg, nil
}

// newManager creates a docking manager wired to the configured store.
func (c *CLI) newManager(ctx context.Context) (*docking.Manager, store.Store, error) {
	st, cfg, err := c.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	mgr := docking.NewManager(st, c.Logger)
	mgr.SetDropConfig(cfg.DropzoneConfig())
	return mgr, st, nil
}

// =============================================================================
// Paths
// =============================================================================

// dataDir returns the layout directory using XDG standard (~/.local/share/dockyard/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// configPath returns the config file path using XDG standard (~/.config/dockyard/).
func configPath() string {
	if cfgHome := os.Getenv("XDG_CONFIG_HOME"); cfgHome != "" {
		return filepath.Join(cfgHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
