package catalog

import (
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/metrics"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
	"git.home.luguber.info/inful/doccatalog/internal/versioning"
)

const defaultStartPage = "index.adoc"

// ComponentVersion is one published version of a component.
type ComponentVersion struct {
	Version         string `json:"version"`
	DisplayVersion  string `json:"display_version"`
	Title           string `json:"title"`
	Prerelease      bool   `json:"prerelease,omitempty"`
	PrereleaseLabel string `json:"prerelease_label,omitempty"`
	// URL is the public URL of the version's start page.
	URL string `json:"url"`
}

// Component is a named set of versions ordered newest first.
type Component struct {
	Name     string              `json:"name"`
	Versions []*ComponentVersion `json:"versions"`
	Latest   *ComponentVersion   `json:"latest"`
}

// Title is the title of the latest version.
func (c *Component) Title() string { return c.Latest.Title }

// URL is the start page URL of the latest version.
func (c *Component) URL() string { return c.Latest.URL }

// VersionOptions are the optional descriptor fields of a component version.
type VersionOptions struct {
	DisplayVersion string
	Title          string
	// Prerelease marks the version as a prerelease; a non-empty PrereleaseLabel implies it.
	Prerelease      bool
	PrereleaseLabel string
	// StartPage is a page address resolved in module ROOT of the version. Default index.adoc.
	StartPage string
}

// RegisterComponentVersion adds version to component name, keeping versions sorted newest first.
func (c *Catalog) RegisterComponentVersion(name, version string, opts VersionOptions) (*ComponentVersion, error) {
	if comp, ok := c.components[name]; ok {
		if comp.version(version) != nil {
			c.recorder.IncConflict(metrics.ConflictVersion)
			return nil, ferrors.ConflictError("duplicate version detected for component").
				WithCause(ErrDuplicateIdentity).
				WithContext("component", name).
				WithContext("version", version).
				Build()
		}
	}

	url, err := c.startPageURL(name, version, opts.StartPage)
	if err != nil {
		return nil, err
	}

	cv := &ComponentVersion{
		Version:        version,
		DisplayVersion: opts.DisplayVersion,
		Title:          opts.Title,
		URL:            url,
	}
	if cv.DisplayVersion == "" {
		cv.DisplayVersion = version
	}
	if cv.Title == "" {
		cv.Title = name
	}
	if opts.Prerelease || opts.PrereleaseLabel != "" {
		cv.Prerelease = true
		cv.PrereleaseLabel = opts.PrereleaseLabel
		if opts.DisplayVersion == "" && opts.PrereleaseLabel != "" {
			sep := " "
			if strings.HasPrefix(opts.PrereleaseLabel, "-") || strings.HasPrefix(opts.PrereleaseLabel, ".") {
				sep = ""
			}
			cv.DisplayVersion = version + sep + opts.PrereleaseLabel
		}
	}

	comp, ok := c.components[name]
	if !ok {
		comp = &Component{Name: name}
		c.components[name] = comp
	}
	idx := slices.IndexFunc(comp.Versions, func(candidate *ComponentVersion) bool {
		return versioning.CompareDesc(candidate.Version, version) > 0
	})
	if idx < 0 {
		comp.Versions = append(comp.Versions, cv)
	} else {
		comp.Versions = slices.Insert(comp.Versions, idx, cv)
	}
	comp.Latest = comp.Versions[0]
	for _, candidate := range comp.Versions {
		if !candidate.Prerelease {
			comp.Latest = candidate
			break
		}
	}

	c.versionCount++
	c.recorder.SetComponentVersions(c.versionCount)
	c.logger.Debug("Registered component version",
		logfields.Component(name), logfields.Version(version), logfields.URL(url))
	return cv, nil
}

func (c *Catalog) startPageURL(name, version, configured string) (string, error) {
	address := configured
	if address == "" {
		address = defaultStartPage
	}
	page, err := c.ResolvePage(address, resource.Context{Component: name, Version: version, Module: resource.RootModule})
	if err != nil {
		return "", err
	}
	if page != nil {
		if target := c.follow(page); target.Pub != nil {
			return target.Pub.URL, nil
		}
	}
	if configured != "" {
		return "", ferrors.NotFoundError("start page specified for component version not found").
			WithCause(ErrMissingStartPage).
			WithContext("component", name).
			WithContext("version", version).
			WithContext("start_page", configured).
			Build()
	}
	id := resource.Identity{Component: name, Version: version, Module: resource.RootModule, Family: resource.FamilyPage, Relative: defaultStartPage}
	_, pub := publish.Compute(id, resource.MarkupMediaType, resource.FamilyPage, c.style)
	return pub.URL, nil
}

func (comp *Component) version(version string) *ComponentVersion {
	for _, cv := range comp.Versions {
		if cv.Version == version {
			return cv
		}
	}
	return nil
}

// GetComponent returns the named component or nil.
func (c *Catalog) GetComponent(name string) *Component {
	return c.components[name]
}

// GetComponentVersion returns the named version of a component or nil.
func (c *Catalog) GetComponentVersion(component, version string) *ComponentVersion {
	comp := c.components[component]
	if comp == nil {
		return nil
	}
	return comp.version(version)
}

// GetComponents returns all components ordered by name.
func (c *Catalog) GetComponents() []*Component {
	return c.GetComponentsSortedBy(ByName)
}

// ByName and ByTitle are sort keys for GetComponentsSortedBy.
var (
	ByName  = func(comp *Component) string { return comp.Name }
	ByTitle = func(comp *Component) string { return comp.Title() }
)

// GetComponentsSortedBy returns all components ordered by key under locale collation.
func (c *Catalog) GetComponentsSortedBy(key func(*Component) string) []*Component {
	out := make([]*Component, 0, len(c.components))
	for _, comp := range c.components {
		out = append(out, comp)
	}
	slices.SortStableFunc(out, func(a, b *Component) int {
		if r := versioning.LocaleCompare(key(a), key(b)); r != 0 {
			return r
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
