package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	"git.home.luguber.info/inful/doccatalog/internal/navigation"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

const navSource = `# Guide

* [Install](install.adoc)
* Concepts
  * xref:concepts/model.adoc[The *model*]
  * [Missing](missing.adoc)
* [Site](https://example.com)

Some text between lists.

* [Setup](install.adoc#setup)
* xref:install.adoc[]

1. ordered lists are ignored
`

func newNavFixture(t *testing.T) (*catalog.Catalog, *catalog.File) {
	t.Helper()
	cat := catalog.New(publish.StyleDefault)
	for _, rel := range []string{"install.adoc", "concepts/model.adoc"} {
		_, err := cat.AddFile(&catalog.File{
			ID:        resource.Identity{Component: "c", Version: "1.0", Module: "ROOT", Family: resource.FamilyPage, Relative: rel},
			MediaType: resource.MarkupMediaType,
		})
		require.NoError(t, err)
	}
	nav, err := cat.AddFile(&catalog.File{
		ID:        resource.Identity{Component: "c", Version: "1.0", Module: "ROOT", Family: resource.FamilyNav, Relative: "nav.md"},
		MediaType: "text/markdown",
		Contents:  []byte(navSource),
		Nav:       &catalog.NavInfo{Index: 0},
	})
	require.NoError(t, err)
	return cat, nav
}

func TestNavLoader_LoadLists(t *testing.T) {
	cat, nav := newNavFixture(t)

	lists, err := NewNavLoader(nil).LoadLists(nav, cat)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	first := lists[0]
	assert.Equal(t, "Guide", first.Title)
	require.Len(t, first.Items, 3)
	assert.Equal(t, `<a href="/c/1.0/install.html" class="page">Install</a>`, first.Items[0].Text)
	assert.Equal(t, "Concepts", first.Items[1].Text)
	require.Len(t, first.Items[1].Items, 2)
	assert.Equal(t, `<a href="/c/1.0/concepts/model.html" class="page">The <em>model</em></a>`, first.Items[1].Items[0].Text)
	assert.Equal(t, `<a href="#" class="unresolved">missing.adoc</a>`, first.Items[1].Items[1].Text)
	assert.Equal(t, `<a href="https://example.com">Site</a>`, first.Items[2].Text)

	second := lists[1]
	assert.Empty(t, second.Title)
	require.Len(t, second.Items, 2)
	assert.Equal(t, `<a href="/c/1.0/install.html#setup" class="page">Setup</a>`, second.Items[0].Text)
	assert.Equal(t, `<a href="/c/1.0/install.html" class="page">install.adoc</a>`, second.Items[1].Text)
}

func TestNavLoader_FeedsNavigationBuild(t *testing.T) {
	cat, _ := newNavFixture(t)

	navCatalog, err := navigation.Build(cat, NewNavLoader(nil))
	require.NoError(t, err)

	forest := navCatalog.GetNavigation("c", "1.0")
	require.Len(t, forest, 2)
	assert.Equal(t, "Guide", forest[0].Content)
	assert.InDelta(t, 0.5, forest[1].Order, 1e-9)

	missing := forest[0].Items[1].Items[1]
	assert.Equal(t, navigation.URLFragment, missing.URLType)

	ctx := navigation.Correlate(forest, "/c/1.0/concepts/model.html", "")
	require.NotNil(t, ctx.Current)
	assert.Equal(t, "/c/1.0/install.html", ctx.Previous.URL)
	assert.Equal(t, "/c/1.0/install.html#setup", ctx.Next.URL)
	require.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, []string{"Guide", "Concepts", "The <em>model</em>"}, []string{
		ctx.Breadcrumbs[0].Content, ctx.Breadcrumbs[1].Content, ctx.Breadcrumbs[2].Content,
	})
}

func TestPageRef(t *testing.T) {
	tests := []struct {
		dest string
		ref  string
		ok   bool
	}{
		{"install.adoc", "install.adoc", true},
		{"install.adoc#x", "install.adoc#x", true},
		{"xref:c::index.adoc", "c::index.adoc", true},
		{"https://example.com/a.adoc", "", false},
		{"/c/1.0/a.adoc", "", false},
		{"notes.md", "notes.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			ref, ok := pageRef(tt.dest)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.ref, ref)
			}
		})
	}
}

func TestNavLoader_EmptyFile(t *testing.T) {
	cat := catalog.New(publish.StyleDefault)
	lists, err := NewNavLoader(nil).LoadLists(&catalog.File{ID: resource.Identity{Component: "c", Version: "1.0", Module: "ROOT", Family: resource.FamilyNav, Relative: "nav.md"}}, cat)
	require.NoError(t, err)
	assert.Empty(t, lists)
}
