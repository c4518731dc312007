package catalog

import (
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// PageVersion is a page's presence in one version of its component.
type PageVersion struct {
	Version        string `json:"version"`
	DisplayVersion string `json:"display_version"`
	Title          string `json:"title"`
	// URL is the page in that version, or the version's start page when Missing.
	URL        string `json:"url"`
	Latest     bool   `json:"latest,omitempty"`
	Prerelease bool   `json:"prerelease,omitempty"`
	Missing    bool   `json:"missing,omitempty"`
}

// PageVersions lists page across every version of its component, newest first.
func (c *Catalog) PageVersions(page *File) []PageVersion {
	comp := c.components[page.ID.Component]
	if comp == nil {
		return nil
	}
	out := make([]PageVersion, 0, len(comp.Versions))
	for _, cv := range comp.Versions {
		pv := PageVersion{
			Version:        cv.Version,
			DisplayVersion: cv.DisplayVersion,
			Title:          cv.Title,
			URL:            cv.URL,
			Latest:         cv == comp.Latest,
			Prerelease:     cv.Prerelease,
		}
		id := resource.Identity{
			Component: page.ID.Component,
			Version:   cv.Version,
			Module:    page.ID.Module,
			Family:    resource.FamilyPage,
			Relative:  page.ID.Relative,
		}
		if other := c.GetByID(id); other != nil && other.Pub != nil {
			pv.URL = other.Pub.URL
		} else {
			pv.Missing = true
		}
		out = append(out, pv)
	}
	return out
}
