package config

import (
	"fmt"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/doccatalog/internal/foundation"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
)

var configValidators = foundation.NewValidatorChain(validateSite, validateSources)

// validate checks cross-field constraints after defaults have been applied. Every failure is
// reported in one configuration error.
func validate(cfg *Config) error {
	return configValidators.Validate(cfg).ToErrorIn(ferrors.CategoryConfig)
}

func validateSite(cfg *Config) foundation.ValidationResult {
	site := cfg.Site
	if site.URL == "" {
		return foundation.Valid()
	}
	u, err := url.Parse(site.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return foundation.Invalid(foundation.NewFieldError("site.url", "absolute_url", "must be an absolute http(s) URL"))
	}
	return foundation.Valid()
}

func validateSources(cfg *Config) foundation.ValidationResult {
	sources := cfg.Content.Sources
	if len(sources) == 0 {
		return foundation.Invalid(foundation.NewFieldError("content.sources", "required", "must list at least one source"))
	}
	result := foundation.Valid()
	seen := make(map[string]int, len(sources))
	for i, src := range sources {
		field := fmt.Sprintf("content.sources[%d]", i)
		if src.EditURL != "" && !strings.Contains(src.EditURL, "%s") {
			result = result.Combine(foundation.Invalid(
				foundation.NewFieldError(field+".edit_url", "pattern", "must contain %s")))
		}
		key := src.Path + "\x00" + src.StartPath
		if prev, dup := seen[key]; dup {
			result = result.Combine(foundation.Invalid(
				foundation.NewFieldError(field, "duplicate", fmt.Sprintf("duplicates content.sources[%d]", prev))))
			continue
		}
		seen[key] = i
	}
	return result
}
