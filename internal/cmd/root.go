package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/tingyuxuan123/devhaven/internal/config"
	"github.com/tingyuxuan123/devhaven/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"50"`

	Open    OpenCmd    `cmd:"" help:"Open a path in the file manager, a terminal or an editor"`
	Presets PresetsCmd `cmd:"" help:"List detected developer tools"`
	Copy    CopyCmd    `cmd:"" help:"Copy text to the system clipboard"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings (never nil).
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Settings only apply when the flag is still at its default and the
	// env var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == 50 {
			if _, hasEnv := os.LookupEnv("DEVHAVEN_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DEVHAVEN_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit debug settings and append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("DEVHAVEN_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("DEVHAVEN_DEBUG_FILE", logFilePath)
		}
	}

	c.Container = NewContainer()
	return nil
}
