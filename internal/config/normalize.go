package config

import (
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/redirect"
)

// normalize case-folds enumerations. Unknown values are configuration errors.
func normalize(cfg *Config) error {
	style, err := publish.ParseExtensionStyle(string(cfg.URLs.HTMLExtensionStyle))
	if err != nil {
		return invalidValue("urls.html_extension_style", err)
	}
	cfg.URLs.HTMLExtensionStyle = style

	facility, err := redirect.ParseFacility(string(cfg.URLs.RedirectFacility))
	if err != nil {
		return invalidValue("urls.redirect_facility", err)
	}
	cfg.URLs.RedirectFacility = facility

	level, err := logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level))
	if err != nil {
		return invalidValue("logging.level", err)
	}
	cfg.Logging.Level = level

	format, err := logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format))
	if err != nil {
		return invalidValue("logging.format", err)
	}
	cfg.Logging.Format = format
	return nil
}

func invalidValue(field string, err error) error {
	return ferrors.ConfigError(field+": "+err.Error()).
		WithCause(err).
		WithContext("field", field).
		Build()
}
