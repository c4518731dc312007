package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// LsCmd implements the 'ls' command.
type LsCmd struct {
	Family    string `help:"Only list records of this family"`
	Component string `help:"Only list records of this component"`
	Version   string `name:"component-version" help:"Only list records of this version"`
	JSON      bool   `help:"Print records as JSON"`
}

// Entry is one listed record.
type Entry struct {
	ID  resource.Identity `json:"id"`
	URL string            `json:"url,omitempty"`
	Out string            `json:"out,omitempty"`
}

func (l *LsCmd) Run(g *Global, root *CLI) error {
	criteria := resource.Identity{Component: l.Component, Version: l.Version}
	if l.Family != "" {
		family, ok := resource.ParseFamily(l.Family)
		if !ok {
			return ferrors.ValidationError("unknown family").
				WithContext("family", l.Family).
				Build()
		}
		criteria.Family = family
	}
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	site, err := LoadSite(cfg)
	if err != nil {
		return err
	}

	entries := List(site.Catalog, criteria)
	if wantJSON(g.Out, l.JSON) {
		return writeJSON(g.Out, entries)
	}
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FAMILY\tADDRESS\tURL")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID.Family, resource.Format(e.ID), e.URL)
	}
	return tw.Flush()
}

// List returns the records of cat matching criteria in insertion order.
func List(cat *catalog.Catalog, criteria resource.Identity) []Entry {
	files := cat.FindBy(criteria)
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		e := Entry{ID: f.ID, URL: f.URL()}
		if f.Out != nil {
			e.Out = f.Out.Path
		}
		entries = append(entries, e)
	}
	return entries
}
