package catalog

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// Origin records where a file came from.
type Origin struct {
	Type           string `json:"type" yaml:"type"`
	URL            string `json:"url,omitempty" yaml:"url,omitempty"`
	StartPath      string `json:"start_path,omitempty" yaml:"start_path,omitempty"`
	RefName        string `json:"ref_name,omitempty" yaml:"ref_name,omitempty"`
	RefType        string `json:"ref_type,omitempty" yaml:"ref_type,omitempty"`
	EditURLPattern string `json:"edit_url_pattern,omitempty" yaml:"edit_url_pattern,omitempty"`
}

// NavInfo marks a file listed in a component descriptor's nav entry.
type NavInfo struct {
	Index int `json:"index"`
}

// File is a content record. ID is immutable once the file is added to a Catalog.
type File struct {
	ID        resource.Identity `json:"id"`
	MediaType string            `json:"media_type"`
	// Path is the file's path within its content source.
	Path     string  `json:"path"`
	Contents []byte  `json:"-"`
	Origin   *Origin `json:"origin,omitempty"`
	EditURL  string  `json:"edit_url,omitempty"`
	Title    string  `json:"title,omitempty"`

	Out *publish.Out `json:"out,omitempty"`
	Pub *publish.Pub `json:"pub,omitempty"`

	// Rel is the identity of the file an alias points to.
	Rel *resource.Identity `json:"rel,omitempty"`
	Nav *NavInfo           `json:"nav,omitempty"`
}

// IsAlias reports whether f redirects to another file.
func (f *File) IsAlias() bool {
	return f.ID.Family == resource.FamilyAlias && f.Rel != nil
}

// URL is the public URL of f, or "" when f is not published.
func (f *File) URL() string {
	if f.Pub == nil {
		return ""
	}
	return f.Pub.URL
}

func (f *File) actingFamily() resource.Family {
	if f.IsAlias() {
		return f.Rel.Family
	}
	return f.ID.Family
}

func (f *File) expandEditURL() {
	if f.EditURL != "" || f.Origin == nil || f.Origin.EditURLPattern == "" {
		return
	}
	f.EditURL = strings.ReplaceAll(f.Origin.EditURLPattern, "%s", path.Join(f.Origin.StartPath, f.Path))
}
