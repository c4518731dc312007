package navigation

import (
	"log/slog"
	"math"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// ListLoader reads the lists of a nav file. Page references inside list entries must be rendered as
// anchors with class "page" and a root-relative href.
type ListLoader interface {
	LoadLists(navFile *catalog.File, cat *catalog.Catalog) ([]List, error)
}

// ListLoaderFunc adapts a function to ListLoader.
type ListLoaderFunc func(navFile *catalog.File, cat *catalog.Catalog) ([]List, error)

func (f ListLoaderFunc) LoadLists(navFile *catalog.File, cat *catalog.Catalog) ([]List, error) {
	return f(navFile, cat)
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger Build reports loaded nav files to. Nil keeps slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Build loads every nav file of cat and stores one tree per list, ordered by the file's nav index.
// The first list of a file takes the index itself; list i of n takes index + i/n rounded to 4 places.
func Build(cat *catalog.Catalog, loader ListLoader, opts ...BuildOption) (*Catalog, error) {
	o := buildOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	nav := NewCatalog()
	for _, f := range cat.FindBy(resource.Identity{Family: resource.FamilyNav}) {
		lists, err := loader.LoadLists(f, cat)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "failed to load navigation file").
				WithContext("id", f.ID.Key()).
				Build()
		}
		index := 0
		if f.Nav != nil {
			index = f.Nav.Index
		}
		for i, list := range lists {
			tree := BuildTree(list.Title, list.Items)
			tree.Root = true
			tree.Order = float64(index)
			if i > 0 {
				tree.Order = math.Round((float64(index)+float64(i)/float64(len(lists)))*1e4) / 1e4
			}
			nav.AddTree(f.ID.Component, f.ID.Version, tree)
		}
		o.logger.Debug("Loaded navigation file",
			logfields.ID(f.ID.Key()), logfields.Count(len(lists)))
	}
	return nav, nil
}
