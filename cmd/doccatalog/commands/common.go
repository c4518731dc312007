package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doccatalog/internal/config"
)

// Global carries state shared by every command.
type Global struct {
	// Out receives command output; os.Stdout in the binary.
	Out io.Writer
}

// CLI is the root command and its global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"doccatalog.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Classify content sources and produce redirects, sitemaps and a catalog snapshot"`
	Init    InitCmd    `cmd:"" help:"Write an example configuration file"`
	Resolve ResolveCmd `cmd:"" help:"Resolve a resource address against the catalog"`
	Ls      LsCmd      `cmd:"" help:"List catalog records"`
	Nav     NavCmd     `cmd:"" help:"Show the navigation of a component version"`
}

// AfterApply runs after flag parsing and sets up logging until the configuration is read.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	configureLogging(config.LoggingConfig{Level: config.LogLevelInfo, Format: config.LogFormatText}, c.Verbose)
	return nil
}

// loadConfig reads the configuration and reconfigures logging from it.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	configureLogging(cfg.Logging, c.Verbose)
	return cfg, nil
}

func configureLogging(lc config.LoggingConfig, verbose bool) {
	level := lc.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
