// Package cli implements the wallcut command-line interface.
//
// This package provides commands for generating random brick walls,
// rendering explicit walls from JSON data, computing minimum-crossing
// columns, and watching walls interactively. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Build and render a random wall
//   - draw: Render a wall given as a JSON brick matrix
//   - cross: Compute the column where a line crosses the fewest bricks
//   - watch: Interactive terminal viewer with regeneration
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dkoval/wallcut/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "wallcut"

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
		Use:          "wallcut",
		Short:        "Wallcut generates brick walls and cuts them where it hurts least",
		Long:         `Wallcut is a CLI tool that procedurally generates rectangular brick walls as text art and finds the vertical line that crosses the fewest bricks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.crossCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the config file path using XDG standard
// (~/.config/wallcut/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user config, falling back to defaults when the file
// is missing or the config directory cannot be resolved.
func (c *CLI) loadConfig() Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		c.Logger.Warn("Ignoring unreadable config", "path", path, "err", err)
		return DefaultConfig()
	}
	return cfg
}
