package config

import (
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/redirect"
)

// DefaultApplier applies defaults for one configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config)
	Domain() string
}

type urlDefaultApplier struct{}

func (urlDefaultApplier) Domain() string { return "urls" }

func (urlDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.URLs.HTMLExtensionStyle == "" {
		cfg.URLs.HTMLExtensionStyle = publish.StyleDefault
	}
	if cfg.URLs.RedirectFacility == "" {
		cfg.URLs.RedirectFacility = redirect.FacilityStatic
	}
}

type contentDefaultApplier struct{}

func (contentDefaultApplier) Domain() string { return "content" }

func (contentDefaultApplier) ApplyDefaults(cfg *Config) {
	for i := range cfg.Content.Sources {
		if cfg.Content.Sources[i].Path == "" {
			cfg.Content.Sources[i].Path = "."
		}
	}
}

type loggingDefaultApplier struct{}

func (loggingDefaultApplier) Domain() string { return "logging" }

func (loggingDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}

var defaultAppliers = []DefaultApplier{
	urlDefaultApplier{},
	contentDefaultApplier{},
	loggingDefaultApplier{},
}

func applyDefaults(cfg *Config) {
	for _, a := range defaultAppliers {
		a.ApplyDefaults(cfg)
	}
}
