package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	"git.home.luguber.info/inful/doccatalog/internal/catalogstore"
	"git.home.luguber.info/inful/doccatalog/internal/config"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/metrics"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/redirect"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
	"git.home.luguber.info/inful/doccatalog/internal/sitemap"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Directory generated files are written to (nothing is written when empty)" type:"path"`
	JSON   bool   `help:"Print the summary as JSON"`
}

// BuildSummary is the result of a build.
type BuildSummary struct {
	Components        int    `json:"components"`
	ComponentVersions int    `json:"componentVersions"`
	Pages             int    `json:"pages"`
	Aliases           int    `json:"aliases"`
	NavigationSets    int    `json:"navigationSets"`
	Artifacts         int    `json:"artifacts"`
	Written           int    `json:"written"`
	SnapshotID        string `json:"snapshotId,omitempty"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	summary, err := RunBuild(context.Background(), cfg, b.Output)
	if err != nil {
		return err
	}
	if wantJSON(g.Out, b.JSON) {
		return writeJSON(g.Out, summary)
	}
	_, _ = fmt.Fprintf(g.Out, "Components:          %d (%d versions)\n", summary.Components, summary.ComponentVersions)
	_, _ = fmt.Fprintf(g.Out, "Pages:               %d\n", summary.Pages)
	_, _ = fmt.Fprintf(g.Out, "Aliases:             %d\n", summary.Aliases)
	_, _ = fmt.Fprintf(g.Out, "Navigation sets:     %d\n", summary.NavigationSets)
	_, _ = fmt.Fprintf(g.Out, "Generated artifacts: %d\n", summary.Artifacts)
	if b.Output != "" {
		_, _ = fmt.Fprintf(g.Out, "Files written:       %d\n", summary.Written)
	}
	if summary.SnapshotID != "" {
		_, _ = fmt.Fprintf(g.Out, "Snapshot:            %s\n", summary.SnapshotID)
	}
	return nil
}

// RunBuild loads the site, produces redirects and sitemaps, and writes the configured outputs.
func RunBuild(ctx context.Context, cfg *config.Config, outputDir string) (*BuildSummary, error) {
	site, err := LoadSite(cfg)
	if err != nil {
		return nil, err
	}
	cat := site.Catalog

	var artifacts []publish.Artifact
	if err := site.stage("redirects", func() error {
		produced, err := redirect.Produce(cat, redirect.Options{
			Facility: cfg.URLs.RedirectFacility,
			SiteURL:  cfg.Site.URL,
			Style:    cfg.URLs.HTMLExtensionStyle,
			Logger:   slog.Default(),
		})
		artifacts = append(artifacts, produced...)
		return err
	}); err != nil {
		return nil, err
	}
	if err := site.stage("sitemap", func() error {
		produced, err := sitemap.Map(cfg.Site.URL, cat.PublishedPages(), time.Now())
		artifacts = append(artifacts, produced...)
		return err
	}); err != nil {
		return nil, err
	}

	summary := &BuildSummary{
		Pages:          len(cat.FindBy(resource.Identity{Family: resource.FamilyPage})),
		Aliases:        len(cat.FindBy(resource.Identity{Family: resource.FamilyAlias})),
		NavigationSets: site.Navigation.Len(),
		Artifacts:      len(artifacts),
	}
	for _, comp := range cat.GetComponents() {
		summary.Components++
		summary.ComponentVersions += len(comp.Versions)
	}

	if outputDir != "" {
		n, err := writeOutputs(outputDir, cat, artifacts)
		if err != nil {
			return nil, err
		}
		summary.Written = n
	}

	if cfg.Output.CatalogDB != "" {
		id, err := saveSnapshot(ctx, cfg.Output.CatalogDB, cat)
		if err != nil {
			return nil, err
		}
		summary.SnapshotID = id
	}

	if cfg.Output.MetricsFile != "" {
		if err := ensureParent(cfg.Output.MetricsFile); err != nil {
			return nil, err
		}
		if err := metrics.WriteTextfile(cfg.Output.MetricsFile, site.Registry); err != nil {
			return nil, ferrors.FileSystemError("write metrics file").WithCause(err).
				WithContext("path", cfg.Output.MetricsFile).
				Build()
		}
	}

	slog.Info("Build complete",
		logfields.Count(summary.Pages),
		slog.Int("aliases", summary.Aliases),
		slog.Int("artifacts", summary.Artifacts))
	return summary, nil
}

// writeOutputs writes generated artifacts plus the files that publish verbatim: aliases carrying
// bounce pages, images and attachments. Pages need conversion and are not written.
func writeOutputs(dir string, cat *catalog.Catalog, artifacts []publish.Artifact) (int, error) {
	written := 0
	for _, a := range artifacts {
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(a.Path)), a.Contents); err != nil {
			return written, err
		}
		written++
	}
	for _, f := range cat.GetFiles() {
		if f.Out == nil || f.Contents == nil {
			continue
		}
		switch f.ID.Family {
		case resource.FamilyAlias, resource.FamilyImage, resource.FamilyAttachment:
		default:
			continue
		}
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(f.Out.Path)), f.Contents); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.FileSystemError("write output file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

func ensureParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ferrors.FileSystemError("create output directory").WithCause(err).
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	return nil
}

func saveSnapshot(ctx context.Context, path string, cat *catalog.Catalog) (string, error) {
	if err := ensureParent(path); err != nil {
		return "", err
	}
	store, err := catalogstore.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = store.Close() }()
	id, err := store.Save(ctx, cat)
	if err != nil {
		return "", err
	}
	slog.Info("Saved catalog snapshot", slog.String("snapshot", id), logfields.Path(path))
	return id, nil
}
