package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

func pageID(component, version, module, relative string) resource.Identity {
	return resource.Identity{Component: component, Version: version, Module: module, Family: resource.FamilyPage, Relative: relative}
}

func addPage(t *testing.T, c *Catalog, component, version, module, relative string) *File {
	t.Helper()
	f, err := c.AddFile(&File{
		ID:        pageID(component, version, module, relative),
		MediaType: resource.MarkupMediaType,
		Path:      "modules/" + module + "/pages/" + relative,
	})
	require.NoError(t, err)
	return f
}

func TestAddFile_ComputesPublishInfo(t *testing.T) {
	c := New(publish.StyleDefault)

	page := addPage(t, c, "c", "1.0", "ROOT", "topic/a.adoc")
	require.NotNil(t, page.Out)
	assert.Equal(t, "c/1.0/topic/a.html", page.Out.Path)
	assert.Equal(t, "/c/1.0/topic/a.html", page.URL())

	image, err := c.AddFile(&File{
		ID:        resource.Identity{Component: "c", Version: "1.0", Module: "ROOT", Family: resource.FamilyImage, Relative: "flow.png"},
		MediaType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "c/1.0/_images/flow.png", image.Out.Path)

	partial, err := c.AddFile(&File{
		ID:        resource.Identity{Component: "c", Version: "1.0", Module: "ROOT", Family: resource.FamilyPartial, Relative: "p.adoc"},
		MediaType: resource.MarkupMediaType,
	})
	require.NoError(t, err)
	assert.Nil(t, partial.Out)
	assert.Nil(t, partial.Pub)

	hidden := addPage(t, c, "c", "1.0", "ROOT", "_drafts/x.adoc")
	assert.Nil(t, hidden.Out)
	assert.Nil(t, hidden.Pub)

	nav, err := c.AddFile(&File{
		ID:        resource.Identity{Component: "c", Version: "1.0", Module: "ROOT", Family: resource.FamilyNav, Relative: "nav.adoc"},
		MediaType: resource.MarkupMediaType,
		Nav:       &NavInfo{Index: 0},
	})
	require.NoError(t, err)
	assert.Nil(t, nav.Out)
	require.NotNil(t, nav.Pub)
	assert.Equal(t, "/c/1.0/", nav.Pub.URL)
}

func TestAddFile_KeepsProvidedOut(t *testing.T) {
	c := New(publish.StyleDefault)
	out := &publish.Out{Dirname: "custom", Basename: "x.html", Path: "custom/x.html", ModuleRootPath: ".", RootPath: ".."}
	f, err := c.AddFile(&File{ID: pageID("c", "1.0", "ROOT", "_x.adoc"), MediaType: resource.MarkupMediaType, Out: out})
	require.NoError(t, err)
	assert.Same(t, out, f.Out)
	assert.Equal(t, "/custom/x.html", f.URL())
}

func TestAddFile_DuplicateIdentity(t *testing.T) {
	c := New(publish.StyleDefault)
	addPage(t, c, "c", "1.0", "ROOT", "a.adoc")

	_, err := c.AddFile(&File{ID: pageID("c", "1.0", "ROOT", "a.adoc"), MediaType: resource.MarkupMediaType})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryAlreadyExists))
	assert.Contains(t, err.Error(), "1.0@c:ROOT:page$a.adoc")
	assert.Len(t, c.GetFiles(), 1)
}

func TestAddFile_MissingFamily(t *testing.T) {
	c := New(publish.StyleDefault)
	_, err := c.AddFile(&File{ID: resource.Identity{Component: "c", Version: "1.0", Module: "ROOT", Relative: "a.adoc"}})
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestAddFile_PublishPathCollision(t *testing.T) {
	c := New(publish.StyleIndexify)
	addPage(t, c, "c", "1.0", "ROOT", "a.adoc")

	_, err := c.AddFile(&File{ID: pageID("c", "1.0", "ROOT", "a/index.adoc"), MediaType: resource.MarkupMediaType})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPublishPathCollision)
	assert.Nil(t, c.GetByID(pageID("c", "1.0", "ROOT", "a/index.adoc")))
}

func TestUnpublish_FreesPath(t *testing.T) {
	c := New(publish.StyleIndexify)
	a := addPage(t, c, "c", "1.0", "ROOT", "a.adoc")
	c.Unpublish(a)
	assert.Nil(t, a.Out)
	assert.NotNil(t, a.Pub)

	addPage(t, c, "c", "1.0", "ROOT", "a/index.adoc")
}

func TestLookups(t *testing.T) {
	c := New(publish.StyleDefault)
	a := addPage(t, c, "c", "1.0", "ROOT", "a.adoc")
	b := addPage(t, c, "c", "2.0", "ROOT", "a.adoc")
	d := addPage(t, c, "d", "1.0", "admin", "b.adoc")

	assert.Equal(t, []*File{a, b, d}, c.GetFiles())
	assert.Same(t, b, c.GetByID(pageID("c", "2.0", "ROOT", "a.adoc")))
	assert.Nil(t, c.GetByID(pageID("c", "3.0", "ROOT", "a.adoc")))
	assert.Same(t, d, c.GetByPath("d", "1.0", "modules/admin/pages/b.adoc"))
	assert.Nil(t, c.GetByPath("d", "2.0", "modules/admin/pages/b.adoc"))

	assert.Equal(t, []*File{a, b}, c.FindBy(resource.Identity{Component: "c"}))
	assert.Equal(t, []*File{a, d}, c.FindBy(resource.Identity{Version: "1.0", Family: resource.FamilyPage}))
	assert.Equal(t, []*File{d}, c.FindBy(resource.Identity{Module: "admin"}))
	assert.Empty(t, c.FindBy(resource.Identity{Family: resource.FamilyImage}))
}

func TestAddFile_ExpandsEditURL(t *testing.T) {
	c := New(publish.StyleDefault)
	f, err := c.AddFile(&File{
		ID:        pageID("c", "1.0", "ROOT", "a.adoc"),
		MediaType: resource.MarkupMediaType,
		Path:      "modules/ROOT/pages/a.adoc",
		Origin:    &Origin{Type: "local", StartPath: "docs", EditURLPattern: "https://git.example.com/docs/edit/main/%s"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://git.example.com/docs/edit/main/docs/modules/ROOT/pages/a.adoc", f.EditURL)
}

func TestPublishedPages(t *testing.T) {
	c := New(publish.StyleDefault)
	a := addPage(t, c, "c", "1.0", "ROOT", "a.adoc")
	addPage(t, c, "c", "1.0", "ROOT", "_hidden.adoc")
	b := addPage(t, c, "c", "1.0", "ROOT", "b.adoc")
	_, err := c.RegisterPageAlias("old.adoc", a)
	require.NoError(t, err)

	assert.Equal(t, []*File{a, b}, c.PublishedPages())
}
