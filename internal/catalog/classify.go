package catalog

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// SourceFile is a raw file of a component version, addressed by its path in the content source.
type SourceFile struct {
	Path      string
	MediaType string
	Contents  []byte
	Origin    *Origin
}

// Bundle is the content of one component version as gathered from its source.
type Bundle struct {
	Name            string
	Version         string
	DisplayVersion  string
	Title           string
	Prerelease      bool
	PrereleaseLabel string
	StartPage       string
	Nav             []string
	Files           []*SourceFile
}

// Classify allocates the files of each bundle to families, adds them, and registers the bundle's
// component version. After all bundles the aliases declared in page headers are registered, then the
// site start page. The first error aborts.
func (c *Catalog) Classify(bundles []Bundle, siteStartPage string) error {
	for _, b := range bundles {
		added := 0
		for _, src := range b.Files {
			f, ok := allocate(src, b)
			if !ok {
				continue
			}
			if _, err := c.AddFile(f); err != nil {
				return err
			}
			added++
		}
		_, err := c.RegisterComponentVersion(b.Name, b.Version, VersionOptions{
			DisplayVersion:  b.DisplayVersion,
			Title:           b.Title,
			Prerelease:      b.Prerelease,
			PrereleaseLabel: b.PrereleaseLabel,
			StartPage:       b.StartPage,
		})
		if err != nil {
			return err
		}
		c.logger.Info("Classified component version",
			logfields.Component(b.Name), logfields.Version(b.Version), logfields.Count(added))
	}
	for _, page := range c.FindBy(resource.Identity{Family: resource.FamilyPage}) {
		if _, err := c.RegisterPageAliases(page); err != nil {
			return err
		}
	}
	_, err := c.RegisterSiteStartPage(siteStartPage)
	return err
}

// allocate maps a source path to an identity:
//
//	modules/<m>/pages/_partials/**     partial
//	modules/<m>/pages/**               page (markup only)
//	modules/<m>/partials/**            partial
//	modules/<m>/examples/**            example
//	modules/<m>/assets/images/**       image
//	modules/<m>/assets/attachments/**  attachment
//
// Files listed in the bundle's nav become nav files wherever they live. Anything else is skipped.
func allocate(src *SourceFile, b Bundle) (*File, bool) {
	f := &File{
		ID:        resource.Identity{Component: b.Name, Version: b.Version},
		MediaType: src.MediaType,
		Path:      src.Path,
		Contents:  src.Contents,
		Origin:    src.Origin,
	}
	segments := strings.Split(src.Path, "/")

	if idx := slices.Index(b.Nav, src.Path); idx >= 0 {
		f.Nav = &NavInfo{Index: idx}
		f.ID.Family = resource.FamilyNav
		if segments[0] == "modules" && len(segments) > 2 {
			f.ID.Module = segments[1]
			f.ID.Relative = strings.Join(segments[2:], "/")
		} else {
			f.ID.Relative = src.Path
		}
		return f, true
	}

	if segments[0] != "modules" || len(segments) < 4 {
		return nil, false
	}
	switch segments[2] {
	case "pages":
		switch {
		case segments[3] == "_partials":
			f.ID.Family = resource.FamilyPartial
			f.ID.Relative = strings.Join(segments[4:], "/")
		case src.MediaType == resource.MarkupMediaType:
			f.ID.Family = resource.FamilyPage
			f.ID.Relative = strings.Join(segments[3:], "/")
		default:
			return nil, false
		}
	case "assets":
		switch segments[3] {
		case "images":
			f.ID.Family = resource.FamilyImage
		case "attachments":
			f.ID.Family = resource.FamilyAttachment
		default:
			return nil, false
		}
		f.ID.Relative = strings.Join(segments[4:], "/")
	case "examples":
		f.ID.Family = resource.FamilyExample
		f.ID.Relative = strings.Join(segments[3:], "/")
	case "partials":
		f.ID.Family = resource.FamilyPartial
		f.ID.Relative = strings.Join(segments[3:], "/")
	default:
		return nil, false
	}
	if f.ID.Relative == "" {
		return nil, false
	}
	f.ID.Module = segments[1]
	return f, true
}
