package resource

import (
	"path"
	"strings"
)

const (
	// RootModule is the module assumed when an address names a component but no module.
	RootModule = "ROOT"
	// UnversionedMarker is the version label whose URL segment is omitted from publish paths.
	UnversionedMarker = "master"
	// PageExtension is the markup extension appended to page addresses that lack it.
	PageExtension = ".adoc"
	// MarkupMediaType is the media type of page sources.
	MarkupMediaType = "text/asciidoc"
)

// Identity is the globally unique key of a piece of content.
type Identity struct {
	Component string `json:"component" yaml:"component"`
	Version   string `json:"version" yaml:"version"`
	Module    string `json:"module" yaml:"module"`
	Family    Family `json:"family" yaml:"family"`
	Relative  string `json:"relative" yaml:"relative"`
}

// Key returns the canonical string form version@component:module:family$relative.
// Two identities are equal exactly when their keys are equal.
func (id Identity) Key() string {
	var b strings.Builder
	b.Grow(len(id.Version) + len(id.Component) + len(id.Module) + len(id.Relative) + 16)
	b.WriteString(id.Version)
	b.WriteByte('@')
	b.WriteString(id.Component)
	b.WriteByte(':')
	b.WriteString(id.Module)
	b.WriteByte(':')
	b.WriteString(id.Family.String())
	b.WriteByte('$')
	b.WriteString(id.Relative)
	return b.String()
}

func (id Identity) String() string { return id.Key() }

// WithFamily returns a copy of id in another family.
func (id Identity) WithFamily(f Family) Identity {
	id.Family = f
	return id
}

// Basename is the last path segment of Relative.
func (id Identity) Basename() string { return path.Base(id.Relative) }

// Extname is the extension of Relative including the dot, or "".
func (id Identity) Extname() string { return path.Ext(id.Relative) }

// Stem is Basename without its extension.
func (id Identity) Stem() string {
	base := id.Basename()
	return strings.TrimSuffix(base, path.Ext(base))
}

// Hidden reports whether any segment of Relative starts with an underscore.
func (id Identity) Hidden() bool {
	return strings.Contains("/"+id.Relative, "/_")
}

// Context is the identity of the referring content, used to qualify partial addresses.
type Context struct {
	Component string
	Version   string
	Module    string
}

// ContextOf returns the context an identity provides to addresses found in it.
func ContextOf(id Identity) Context {
	return Context{Component: id.Component, Version: id.Version, Module: id.Module}
}
