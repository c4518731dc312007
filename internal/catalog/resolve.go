package catalog

import (
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/metrics"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

var pageOnly = resource.ParseOptions{Permitted: []resource.Family{resource.FamilyPage}}

// ResolveResource resolves address in ctx to a file. It returns (nil, nil) when the address is well
// formed but names nothing, and an error only when the address is malformed. Without a version the
// latest version of the named component is used.
func (c *Catalog) ResolveResource(address string, ctx resource.Context, opts resource.ParseOptions) (*File, error) {
	return c.resolve(address, ctx, opts, false)
}

// ResolvePage resolves a page address. A page alias registered at the same identity is returned
// when no page exists there; use Target to reach the page it points to.
func (c *Catalog) ResolvePage(address string, ctx resource.Context) (*File, error) {
	return c.resolve(address, ctx, pageOnly, true)
}

func (c *Catalog) resolve(address string, ctx resource.Context, opts resource.ParseOptions, aliases bool) (*File, error) {
	id, err := resource.Parse(address, ctx, opts)
	if err != nil {
		c.recorder.IncResolution(metrics.ResolutionInvalid)
		return nil, err
	}
	f := c.lookup(id)
	if f == nil && aliases && id.Family == resource.FamilyPage {
		f = c.lookup(id.WithFamily(resource.FamilyAlias))
	}
	if f == nil {
		c.recorder.IncResolution(metrics.ResolutionUnresolved)
		c.logger.Debug("Unresolved resource", logfields.Address(address))
		return nil, nil
	}
	c.recorder.IncResolution(metrics.ResolutionResolved)
	return f, nil
}

func (c *Catalog) lookup(id resource.Identity) *File {
	if id.Family == resource.FamilyNone {
		return nil
	}
	if id.Version == "" {
		comp := c.components[id.Component]
		if comp == nil {
			return nil
		}
		id.Version = comp.Latest.Version
	}
	return c.GetByID(id)
}
