// Package config loads the site configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/redirect"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "doccatalog.yaml"

// Config is the site configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	URLs    URLConfig     `yaml:"urls"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SiteConfig describes the published site.
type SiteConfig struct {
	Title string `yaml:"title,omitempty"`
	// URL is the absolute site URL; sitemaps and canonical links need it.
	URL string `yaml:"url,omitempty"`
	// StartPage is the address of the page served at the site root.
	StartPage string `yaml:"start_page,omitempty"`
}

// URLConfig controls how publish URLs are computed and how aliases redirect.
type URLConfig struct {
	HTMLExtensionStyle publish.ExtensionStyle `yaml:"html_extension_style,omitempty"`
	RedirectFacility   redirect.Facility      `yaml:"redirect_facility,omitempty"`
}

// ContentConfig lists the content sources, one component version each.
type ContentConfig struct {
	Sources []ContentSource `yaml:"sources"`
}

// ContentSource is a local directory holding a component descriptor.
type ContentSource struct {
	Path      string `yaml:"path"`
	StartPath string `yaml:"start_path,omitempty"`
	// EditURL is a pattern whose %s is replaced by a file's path in the source.
	EditURL string `yaml:"edit_url,omitempty"`
}

// OutputConfig names optional build outputs.
type OutputConfig struct {
	// CatalogDB is the SQLite file catalog snapshots are saved to; empty disables snapshots.
	CatalogDB string `yaml:"catalog_db,omitempty"`
	// MetricsFile receives Prometheus text-format metrics after a build; empty disables it.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Load reads the configuration file at configPath. Variables from .env files are loaded first and
// ${VAR} references in the file are expanded before decoding.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.FileSystemError("read configuration file").WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return Parse(data)
}

// Parse decodes, normalizes, defaults, and validates configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, ferrors.ConfigError(fmt.Sprintf("decode configuration: %v", err)).
			WithCause(err).
			Build()
	}
	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes an example configuration to configPath. An existing file is kept unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		Site: SiteConfig{Title: "Documentation", URL: "https://docs.example.org", StartPage: "docs::index.adoc"},
		URLs: URLConfig{HTMLExtensionStyle: publish.StyleDefault, RedirectFacility: redirect.FacilityStatic},
		Content: ContentConfig{Sources: []ContentSource{
			{Path: ".", StartPath: "docs", EditURL: "https://git.example.org/docs/edit/main/%s"},
		}},
		Output:  OutputConfig{CatalogDB: "build/catalog.db"},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.InternalError("encode example configuration").WithCause(err).Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return ferrors.FileSystemError("write configuration file").WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return nil
}
