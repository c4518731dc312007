package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	"git.home.luguber.info/inful/doccatalog/internal/config"
	derrors "git.home.luguber.info/inful/doccatalog/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// OriginLocal is the origin type of files read from a local directory.
const OriginLocal = "local"

// Discovery reads component versions from local content sources.
type Discovery struct {
	sources []config.ContentSource
	logger  *slog.Logger
}

// NewDiscovery creates a discovery over sources. A nil logger uses slog.Default().
func NewDiscovery(sources []config.ContentSource, logger *slog.Logger) *Discovery {
	if logger == nil {
		logger = slog.Default()
	}
	return &Discovery{sources: sources, logger: logger}
}

// DiscoverBundles reads every source, in configuration order, into a component version bundle.
func (d *Discovery) DiscoverBundles() ([]catalog.Bundle, error) {
	bundles := make([]catalog.Bundle, 0, len(d.sources))
	total := 0
	for _, src := range d.sources {
		b, err := d.discover(src)
		if err != nil {
			return nil, err
		}
		total += len(b.Files)
		bundles = append(bundles, b)
	}
	d.logger.Info("Content sources discovered", slog.Int("sources", len(bundles)), logfields.Count(total))
	return bundles, nil
}

func (d *Discovery) discover(src config.ContentSource) (catalog.Bundle, error) {
	root := filepath.Join(src.Path, src.StartPath)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return catalog.Bundle{}, ferrors.NotFoundError("content source not found").
			WithCause(derrors.ErrSourceNotFound).
			WithContext("path", root).
			Build()
	}

	desc, err := ReadDescriptor(filepath.Join(root, DescriptorFilename))
	if err != nil {
		return catalog.Bundle{}, err
	}

	origin := &catalog.Origin{
		Type:           OriginLocal,
		URL:            src.Path,
		StartPath:      src.StartPath,
		EditURLPattern: src.EditURL,
	}
	if abs, err := filepath.Abs(src.Path); err == nil {
		origin.URL = abs
	}

	files, err := d.walkSource(root, origin)
	if err != nil {
		return catalog.Bundle{}, ferrors.FileSystemError("walk content source").
			WithCause(fmt.Errorf("%w: %w", derrors.ErrSourceWalkFailed, err)).
			WithContext("path", root).
			Build()
	}

	d.logger.Info("Discovered component version",
		logfields.Component(desc.Name),
		logfields.Version(desc.Version),
		logfields.Path(root),
		logfields.Count(len(files)))

	return catalog.Bundle{
		Name:            desc.Name,
		Version:         desc.Version,
		DisplayVersion:  desc.DisplayVersion,
		Title:           desc.Title,
		Prerelease:      desc.Prerelease,
		PrereleaseLabel: desc.PrereleaseLabel,
		StartPage:       desc.StartPage,
		Nav:             desc.Nav,
		Files:           files,
	}, nil
}

// walkSource collects every non-hidden file below root except the descriptor, in lexical order.
func (d *Discovery) walkSource(root string, origin *catalog.Origin) ([]*catalog.SourceFile, error) {
	var files []*catalog.SourceFile
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == DescriptorFilename {
			return nil
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, path, err)
		}
		files = append(files, &catalog.SourceFile{
			Path:      rel,
			MediaType: MediaTypeOf(rel),
			Contents:  contents,
			Origin:    origin,
		})
		d.logger.Debug("Discovered file", logfields.Path(rel))
		return nil
	})
	return files, err
}

// MediaTypeOf returns the media type for a file name, without parameters. AsciiDoc sources map to
// the page markup type; unknown extensions yield "".
func MediaTypeOf(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".adoc", ".asciidoc", ".asc":
		return resource.MarkupMediaType
	case ".md", ".markdown":
		return "text/markdown"
	case "":
		return ""
	}
	mt := mime.TypeByExtension(ext)
	if mt == "" {
		return ""
	}
	if base, _, err := mime.ParseMediaType(mt); err == nil {
		return base
	}
	return mt
}
