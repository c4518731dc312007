package catalog

import (
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/metrics"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// StartPageID is the identity of the site start page record.
var StartPageID = resource.Identity{Family: resource.FamilyPage, Relative: "index.adoc"}

// RegisterPageAlias adds an alias record at address, qualified by target's context, pointing to
// target. Without a version the alias takes the latest version of its component, or the
// unversioned marker when the component is unknown.
func (c *Catalog) RegisterPageAlias(address string, target *File) (*File, error) {
	id, err := resource.Parse(address, resource.ContextOf(target.ID), pageOnly)
	if err != nil {
		return nil, err
	}
	if id.Family != resource.FamilyPage {
		c.recorder.IncConflict(metrics.ConflictAlias)
		return nil, ferrors.AliasError("page alias must name a page").
			WithCause(ErrInvalidAlias).
			WithContext("address", address).
			Build()
	}
	if id.Version == "" {
		if comp := c.components[id.Component]; comp != nil {
			id.Version = comp.Latest.Version
		} else {
			id.Version = resource.UnversionedMarker
		}
	}
	if existing := c.GetByID(id); existing != nil {
		what := "an existing page"
		if existing == target {
			what = "itself"
		}
		c.recorder.IncConflict(metrics.ConflictAlias)
		return nil, ferrors.AliasError("page alias cannot reference "+what).
			WithCause(ErrInvalidAlias).
			WithContext("address", address).
			WithContext("id", id.Key()).
			Build()
	}

	rel := target.ID
	alias := &File{
		ID:        id.WithFamily(resource.FamilyAlias),
		MediaType: resource.MarkupMediaType,
		Path:      target.Path,
		Rel:       &rel,
	}
	if _, err := c.AddFile(alias); err != nil {
		return nil, err
	}
	c.logger.Debug("Registered page alias", logfields.Address(address), logfields.ID(rel.Key()))
	return alias, nil
}

// RegisterSiteStartPage points the site root at the page named by address (resolved without
// context). An empty address is a no-op.
func (c *Catalog) RegisterSiteStartPage(address string) (*File, error) {
	if address == "" {
		return nil, nil
	}
	page, err := c.ResolvePage(address, resource.Context{})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ferrors.NotFoundError("specified start page for site not found").
			WithCause(ErrMissingStartPage).
			WithContext("address", address).
			Build()
	}
	page = c.follow(page)
	rel := page.ID
	return c.AddFile(&File{
		ID:        StartPageID.WithFamily(resource.FamilyAlias),
		MediaType: resource.MarkupMediaType,
		Path:      page.Path,
		Rel:       &rel,
	})
}

// GetSiteStartPage returns the site start page, following the start page alias to its target.
func (c *Catalog) GetSiteStartPage() *File {
	if page := c.GetByID(StartPageID); page != nil {
		return page
	}
	if alias := c.GetByID(StartPageID.WithFamily(resource.FamilyAlias)); alias != nil {
		return c.Target(alias)
	}
	return nil
}
