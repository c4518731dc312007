package sitemap

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func addPages(t *testing.T, cat *catalog.Catalog, component, version string, relatives ...string) {
	t.Helper()
	for _, rel := range relatives {
		_, err := cat.AddFile(&catalog.File{
			ID:        resource.Identity{Component: component, Version: version, Module: "ROOT", Family: resource.FamilyPage, Relative: rel},
			MediaType: resource.MarkupMediaType,
		})
		require.NoError(t, err)
	}
}

func locs(t *testing.T, contents []byte) []string {
	t.Helper()
	var doc urlset
	require.NoError(t, xml.Unmarshal(contents, &doc))
	out := make([]string, 0, len(doc.URLs))
	for _, u := range doc.URLs {
		assert.Equal(t, "2024-05-01T12:00:00Z", u.LastMod)
		out = append(out, u.Loc)
	}
	return out
}

func TestMap_SingleComponent(t *testing.T) {
	cat := catalog.New(publish.StyleDefault)
	addPages(t, cat, "c", "1.0", "b.adoc", "a.adoc")
	addPages(t, cat, "c", "2.0", "b.adoc")

	artifacts, err := Map("https://docs.example.com/", cat.PublishedPages(), now)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "sitemap.xml", artifacts[0].Path)
	assert.Equal(t, "/sitemap.xml", artifacts[0].URL)
	assert.Equal(t, []string{
		"https://docs.example.com/c/2.0/b.html",
		"https://docs.example.com/c/1.0/a.html",
		"https://docs.example.com/c/1.0/b.html",
	}, locs(t, artifacts[0].Contents))
	assert.Contains(t, string(artifacts[0].Contents), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
}

func TestMap_MultipleComponents(t *testing.T) {
	cat := catalog.New(publish.StyleDefault)
	addPages(t, cat, "zeta", "1.0", "x.adoc")
	addPages(t, cat, "alpha", "1.0", "q&a.adoc")

	artifacts, err := Map("https://docs.example.com", cat.PublishedPages(), now)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	assert.Equal(t, []string{"sitemap.xml", "sitemap-alpha.xml", "sitemap-zeta.xml"},
		[]string{artifacts[0].Path, artifacts[1].Path, artifacts[2].Path})

	var index sitemapIndex
	require.NoError(t, xml.Unmarshal(artifacts[0].Contents, &index))
	require.Len(t, index.Sitemaps, 2)
	assert.Equal(t, "https://docs.example.com/sitemap-alpha.xml", index.Sitemaps[0].Loc)
	assert.Equal(t, "https://docs.example.com/sitemap-zeta.xml", index.Sitemaps[1].Loc)

	assert.Contains(t, string(artifacts[1].Contents), "q&amp;a.html")
	assert.Equal(t, []string{"https://docs.example.com/alpha/1.0/q&a.html"}, locs(t, artifacts[1].Contents))
}

func TestMap_NothingToDo(t *testing.T) {
	cat := catalog.New(publish.StyleDefault)
	addPages(t, cat, "c", "1.0", "a.adoc")

	artifacts, err := Map("", cat.PublishedPages(), now)
	require.NoError(t, err)
	assert.Nil(t, artifacts)

	artifacts, err = Map("https://docs.example.com", nil, now)
	require.NoError(t, err)
	assert.Nil(t, artifacts)
}
