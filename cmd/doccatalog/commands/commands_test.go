package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccatalog/internal/catalogstore"
	"git.home.luguber.info/inful/doccatalog/internal/config"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/navigation"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

const navMarkdown = `* [Home](index.adoc)
  * [Guide](guide.adoc)
  * [Reference](reference.adoc)
`

type fixture struct {
	dir        string
	configPath string
	cfg        *config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "repo")
	files := map[string]string{
		"component.yml":                          "name: docs\nversion: '2.0'\ntitle: Docs\nnav: [modules/ROOT/nav.md]\n",
		"modules/ROOT/nav.md":                 navMarkdown,
		"modules/ROOT/pages/index.adoc":       "= Home\n",
		"modules/ROOT/pages/guide.adoc":       "= Guide\n:page-aliases: old-guide.adoc\n\nText.\n",
		"modules/ROOT/pages/reference.adoc":   "= Reference\n",
		"modules/ROOT/assets/images/logo.png": "png",
	}
	for rel, content := range files {
		p := filepath.Join(src, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	configPath := filepath.Join(dir, config.DefaultPath)
	yaml := "site:\n  url: https://docs.example.org\n  start_page: docs::index.adoc\n" +
		"content:\n  sources:\n  - path: " + src + "\n" +
		"output:\n  catalog_db: " + filepath.Join(dir, "out", "catalog.db") + "\n" +
		"  metrics_file: " + filepath.Join(dir, "out", "metrics.prom") + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	return fixture{dir: dir, configPath: configPath, cfg: cfg}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	var out bytes.Buffer
	g := &Global{Out: &out}
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Bind(g))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	err = ctx.Run(g, &cli)
	return out.String(), err
}

func TestCLI_FlagsDoNotClash(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Bind(&Global{Out: &bytes.Buffer{}}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"resolve", "x.adoc", "--ctx-version", "1.0"})
	require.NoError(t, err)
	assert.Equal(t, "1.0", cli.Resolve.Version)

	_, err = parser.Parse([]string{"nav", "--component", "docs", "--component-version", "2.0"})
	require.NoError(t, err)
	assert.Equal(t, "2.0", cli.Nav.Version)

	_, err = parser.Parse([]string{"ls", "--component-version", "3.0"})
	require.NoError(t, err)
	assert.Equal(t, "3.0", cli.Ls.Version)
}

func TestRunBuild(t *testing.T) {
	f := newFixture(t)
	outDir := filepath.Join(f.dir, "site")

	summary, err := RunBuild(context.Background(), f.cfg, outDir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Components)
	assert.Equal(t, 1, summary.ComponentVersions)
	assert.Equal(t, 3, summary.Pages)
	assert.Equal(t, 2, summary.Aliases)
	assert.Equal(t, 1, summary.NavigationSets)
	assert.Equal(t, 1, summary.Artifacts)
	assert.Equal(t, 4, summary.Written)
	require.NotEmpty(t, summary.SnapshotID)

	sitemap, err := os.ReadFile(filepath.Join(outDir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://docs.example.org/docs/2.0/guide.html</loc>")

	bounce, err := os.ReadFile(filepath.Join(outDir, "docs", "2.0", "old-guide.html"))
	require.NoError(t, err)
	assert.Contains(t, string(bounce), "guide.html")

	_, err = os.Stat(filepath.Join(outDir, "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "docs", "2.0", "_images", "logo.png"))
	assert.NoError(t, err)

	metricsText, err := os.ReadFile(f.cfg.Output.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metricsText), `doccatalog_registrations_total{family="page"} 3`)
	assert.Contains(t, string(metricsText), "doccatalog_stage_duration_seconds")

	store, err := catalogstore.Open(f.cfg.Output.CatalogDB)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	rec, err := store.LookupURL(context.Background(), summary.SnapshotID, "/docs/2.0/guide.html")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "guide.adoc", rec.ID.Relative)
}

func TestRunBuild_OutputNotADirectory(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(f.dir, "site")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := RunBuild(context.Background(), f.cfg, blocker)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}

func TestBuildCommand_JSONSummary(t *testing.T) {
	f := newFixture(t)
	out, err := run(t, "-c", f.configPath, "build")
	require.NoError(t, err)

	var summary BuildSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 3, summary.Pages)
	assert.NotEmpty(t, summary.SnapshotID)
}

func TestResolveCommand(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "-c", f.configPath, "resolve", "docs::guide.adoc")
	require.NoError(t, err)
	var res ResolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "/docs/2.0/guide.html", res.URL)
	assert.Equal(t, "docs/2.0/guide.html", res.OutPath)
	assert.Equal(t, "modules/ROOT/pages/guide.adoc", res.Path)

	out, err = run(t, "-c", f.configPath, "resolve", "old-guide.adoc",
		"--component", "docs", "--ctx-version", "2.0", "--module", "ROOT", "--family", "alias")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Target)
	assert.Equal(t, "guide.adoc", res.Target.Relative)

	out, err = run(t, "-c", f.configPath, "resolve", "ROOT:guide.adoc",
		"--component", "docs", "--ctx-version", "2.0", "--module", "other")
	require.NoError(t, err)
	res = ResolveResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "/docs/2.0/guide.html", res.URL)

	_, err = run(t, "-c", f.configPath, "resolve", "docs::missing.adoc")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))

	_, err = run(t, "-c", f.configPath, "resolve", "a@b@c")
	require.Error(t, err)
	assert.ErrorIs(t, err, resource.ErrMalformedAddress)

	_, err = run(t, "-c", f.configPath, "resolve", "x.adoc", "--family", "bogus")
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestLsCommand(t *testing.T) {
	f := newFixture(t)
	out, err := run(t, "-c", f.configPath, "ls", "--family", "page")
	require.NoError(t, err)

	var entries []Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	var relatives []string
	for _, e := range entries {
		assert.Equal(t, resource.FamilyPage, e.ID.Family)
		relatives = append(relatives, e.ID.Relative)
	}
	assert.ElementsMatch(t, []string{"index.adoc", "guide.adoc", "reference.adoc"}, relatives)

	out, err = run(t, "-c", f.configPath, "ls", "--component", "docs", "--component-version", "9.9")
	require.NoError(t, err)
	entries = nil
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Empty(t, entries)
}

func TestNavCommand(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "-c", f.configPath, "nav", "--component", "docs")
	require.NoError(t, err)
	var forest []*navigation.Node
	require.NoError(t, json.Unmarshal([]byte(out), &forest))
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Items, 1)
	assert.Equal(t, "Home", forest[0].Items[0].Content)

	out, err = run(t, "-c", f.configPath, "nav", "--component", "docs", "--page", "/docs/2.0/guide.html")
	require.NoError(t, err)
	var nctx navigation.Context
	require.NoError(t, json.Unmarshal([]byte(out), &nctx))
	require.NotNil(t, nctx.Current)
	assert.Equal(t, "Guide", nctx.Current.Content)
	require.NotNil(t, nctx.Next)
	assert.Equal(t, "Reference", nctx.Next.Content)
	require.NotNil(t, nctx.Previous)
	assert.Equal(t, "Home", nctx.Previous.Content)

	out, err = run(t, "-c", f.configPath, "nav", "--component", "docs", "--component-version", "2.0")
	require.NoError(t, err)
	forest = nil
	require.NoError(t, json.Unmarshal([]byte(out), &forest))
	require.Len(t, forest, 1)

	_, err = run(t, "-c", f.configPath, "nav", "--component", "nope")
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestRenderForest(t *testing.T) {
	forest := []*navigation.Node{{
		Root: true,
		Items: []*navigation.Node{
			{Content: "Home", URL: "/docs/2.0/", URLType: navigation.URLInternal, Items: []*navigation.Node{
				{Content: "Guide", URL: "/docs/2.0/guide.html", URLType: navigation.URLInternal},
			}},
		},
	}}
	rendered := RenderForest("2.0@docs", forest)
	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "2.0@docs", lines[0])
	assert.Contains(t, lines[1], "(untitled)")
	assert.Contains(t, lines[2], "Home -> /docs/2.0/")
	assert.Contains(t, lines[3], "Guide -> /docs/2.0/guide.html")
}

func TestPrintContext(t *testing.T) {
	home := &navigation.Node{Content: "Home", URL: "/", URLType: navigation.URLInternal}
	guide := &navigation.Node{Content: "Guide", URL: "/guide.html", URLType: navigation.URLInternal}
	var buf bytes.Buffer
	require.NoError(t, PrintContext(&buf, navigation.Context{
		Current:     guide,
		Breadcrumbs: []*navigation.Node{home, guide},
		Parent:      home,
		Previous:    home,
	}))
	assert.Equal(t, "Breadcrumbs: Home > Guide\nParent: Home (/)\nPrevious: Home (/)\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintContext(&buf, navigation.Context{}))
	assert.Equal(t, "page not found in navigation\n", buf.String())
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	out, err := run(t, "-c", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote configuration to")
	_, err = config.Load(path)
	assert.NoError(t, err)
}
