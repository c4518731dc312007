package commands

import (
	"fmt"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Address   string `arg:"" help:"Resource address, version@component:module:family$relative"`
	Component string `help:"Component of the referring context"`
	Version   string `name:"ctx-version" help:"Version of the referring context"`
	Module    string `help:"Module of the referring context"`
	Family    string `help:"Family assumed when the address names none" default:"page"`
	JSON      bool   `help:"Print the result as JSON"`
}

// ResolveResult is a resolved record.
type ResolveResult struct {
	ID      resource.Identity  `json:"id"`
	Address string             `json:"address"`
	URL     string             `json:"url,omitempty"`
	OutPath string             `json:"outPath,omitempty"`
	Path    string             `json:"path,omitempty"`
	Target  *resource.Identity `json:"target,omitempty"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	family, ok := resource.ParseFamily(r.Family)
	if !ok {
		return ferrors.ValidationError("unknown family").
			WithContext("family", r.Family).
			Build()
	}
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	site, err := LoadSite(cfg)
	if err != nil {
		return err
	}

	res, err := Resolve(site.Catalog, r.Address,
		resource.Context{Component: r.Component, Version: r.Version, Module: r.Module}, family)
	if err != nil {
		return err
	}
	if wantJSON(g.Out, r.JSON) {
		return writeJSON(g.Out, res)
	}
	_, _ = fmt.Fprintf(g.Out, "%s\n", res.Address)
	if res.URL != "" {
		_, _ = fmt.Fprintf(g.Out, "  url:    %s\n", res.URL)
	}
	if res.OutPath != "" {
		_, _ = fmt.Fprintf(g.Out, "  out:    %s\n", res.OutPath)
	}
	if res.Path != "" {
		_, _ = fmt.Fprintf(g.Out, "  source: %s\n", res.Path)
	}
	if res.Target != nil {
		_, _ = fmt.Fprintf(g.Out, "  alias of %s\n", resource.Format(*res.Target))
	}
	return nil
}

// Resolve looks up address in cat. An unresolved reference is a not-found error.
func Resolve(cat *catalog.Catalog, address string, ctx resource.Context, family resource.Family) (*ResolveResult, error) {
	f, err := cat.ResolveResource(address, ctx, resource.ParseOptions{DefaultFamily: family})
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ferrors.NotFoundError("unresolved reference").
			WithContext("id", address).
			Build()
	}
	res := &ResolveResult{
		ID:      f.ID,
		Address: resource.Format(f.ID),
		URL:     f.URL(),
		Path:    f.Path,
		Target:  f.Rel,
	}
	if f.Out != nil {
		res.OutPath = f.Out.Path
	}
	return res, nil
}
