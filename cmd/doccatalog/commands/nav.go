package commands

import (
	"fmt"
	"io"

	"github.com/disiqueira/gotree/v3"

	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/navigation"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Component string `required:"" help:"Component whose navigation is shown"`
	Version   string `name:"component-version" help:"Component version (latest when empty)"`
	Page      string `help:"Page URL to locate in the navigation"`
	JSON      bool   `help:"Print the navigation as JSON"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	site, err := LoadSite(cfg)
	if err != nil {
		return err
	}

	version := n.Version
	if version == "" {
		comp := site.Catalog.GetComponent(n.Component)
		if comp == nil {
			return ferrors.NotFoundError("component not found").
				WithContext("id", n.Component).
				Build()
		}
		version = comp.Latest.Version
	}
	forest := site.Navigation.GetNavigation(n.Component, version)
	if forest == nil {
		return ferrors.NotFoundError("no navigation for component version").
			WithContext("id", version+"@"+n.Component).
			Build()
	}

	asJSON := wantJSON(g.Out, n.JSON)
	if n.Page != "" {
		nctx := navigation.Correlate(forest, n.Page, "")
		if asJSON {
			return writeJSON(g.Out, nctx)
		}
		return PrintContext(g.Out, nctx)
	}
	if asJSON {
		return writeJSON(g.Out, forest)
	}
	_, err = io.WriteString(g.Out, RenderForest(version+"@"+n.Component, forest))
	return err
}

// RenderForest draws the trees of a navigation set below a root labelled label.
func RenderForest(label string, forest []*navigation.Node) string {
	root := gotree.New(label)
	for _, tree := range forest {
		addNode(root, tree)
	}
	return root.Print()
}

func addNode(parent gotree.Tree, n *navigation.Node) {
	label := n.Content
	if label == "" {
		label = "(untitled)"
	}
	if n.URL != "" {
		label += " -> " + n.URL
	}
	branch := parent.Add(label)
	for _, child := range n.Items {
		addNode(branch, child)
	}
}

// PrintContext writes breadcrumbs and neighbours of a correlated page.
func PrintContext(w io.Writer, nctx navigation.Context) error {
	if nctx.Current == nil {
		_, err := fmt.Fprintln(w, "page not found in navigation")
		return err
	}
	_, _ = fmt.Fprint(w, "Breadcrumbs:")
	for i, b := range nctx.Breadcrumbs {
		sep := " > "
		if i == 0 {
			sep = " "
		}
		_, _ = fmt.Fprint(w, sep+b.Content)
	}
	_, _ = fmt.Fprintln(w)
	for _, row := range []struct {
		label string
		node  *navigation.Node
	}{{"Parent", nctx.Parent}, {"Previous", nctx.Previous}, {"Next", nctx.Next}} {
		if row.node == nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s: %s (%s)\n", row.label, row.node.Content, row.node.URL)
	}
	return nil
}
