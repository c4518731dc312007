package publish

import (
	"git.home.luguber.info/inful/doccatalog/internal/foundation/normalization"
)

// ExtensionStyle is the URL convention for pages converted to HTML.
type ExtensionStyle string

const (
	// StyleDefault keeps the .html extension (index pages publish as their directory URL).
	StyleDefault ExtensionStyle = "default"
	// StyleDrop removes .html from URLs, and the whole index.html segment.
	StyleDrop ExtensionStyle = "drop"
	// StyleIndexify writes every page as <dir>/<stem>/index.html and links to the directory.
	StyleIndexify ExtensionStyle = "indexify"
)

var styleNormalizer = normalization.NewNormalizer(map[string]ExtensionStyle{
	"default":  StyleDefault,
	"drop":     StyleDrop,
	"indexify": StyleIndexify,
}, StyleDefault)

// ParseExtensionStyle normalizes raw; empty input is StyleDefault.
func ParseExtensionStyle(raw string) (ExtensionStyle, error) {
	return styleNormalizer.NormalizeWithError(raw)
}

// ExtensionStyles lists the accepted style names.
func ExtensionStyles() []string { return styleNormalizer.ValidKeys() }
