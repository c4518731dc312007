// Package sitemap produces sitemap documents for published pages.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"slices"
	"strings"
	"time"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/versioning"
)

const (
	namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	indexName = "sitemap.xml"
	prefix    = "sitemap-"
	mediaType = "application/xml"
)

type urlset struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	Xmlns    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc string `xml:"loc"`
}

type entry struct {
	url     string
	version string
}

// Map lists pages in sitemaps below siteURL. Nothing is produced without a site URL or pages.
// A single component yields sitemap.xml; several yield sitemap-<component>.xml each plus a
// sitemap.xml index. Entries sort by URL, then newest version first when a component has several.
func Map(siteURL string, pages []*catalog.File, now time.Time) ([]publish.Artifact, error) {
	siteURL = strings.TrimSuffix(siteURL, "/")
	if siteURL == "" || len(pages) == 0 {
		return nil, nil
	}
	lastmod := now.UTC().Format(time.RFC3339)

	byComponent := map[string][]entry{}
	for _, page := range pages {
		if page.Pub == nil {
			continue
		}
		byComponent[page.ID.Component] = append(byComponent[page.ID.Component], entry{url: page.Pub.URL, version: page.ID.Version})
	}
	if len(byComponent) == 0 {
		return nil, nil
	}
	components := make([]string, 0, len(byComponent))
	for name := range byComponent {
		components = append(components, name)
	}
	slices.SortFunc(components, versioning.LocaleCompare)

	artifacts := make([]publish.Artifact, 0, len(components)+1)
	for _, name := range components {
		entries := byComponent[name]
		slices.SortStableFunc(entries, func(a, b entry) int { return versioning.LocaleCompare(a.url, b.url) })
		if multipleVersions(entries) {
			slices.SortStableFunc(entries, func(a, b entry) int { return versioning.CompareDesc(a.version, b.version) })
		}
		doc := urlset{Xmlns: namespace}
		for _, e := range entries {
			doc.URLs = append(doc.URLs, urlEntry{Loc: siteURL + e.url, LastMod: lastmod})
		}
		contents, err := encode(doc)
		if err != nil {
			return nil, err
		}
		basename := prefix + name + ".xml"
		artifacts = append(artifacts, publish.Artifact{Path: basename, URL: "/" + basename, MediaType: mediaType, Contents: contents})
	}

	if len(artifacts) == 1 {
		artifacts[0].Path = indexName
		artifacts[0].URL = "/" + indexName
		return artifacts, nil
	}
	index := sitemapIndex{Xmlns: namespace}
	for _, a := range artifacts {
		index.Sitemaps = append(index.Sitemaps, sitemapEntry{Loc: siteURL + a.URL})
	}
	contents, err := encode(index)
	if err != nil {
		return nil, err
	}
	return append([]publish.Artifact{{Path: indexName, URL: "/" + indexName, MediaType: mediaType, Contents: contents}}, artifacts...), nil
}

func multipleVersions(entries []entry) bool {
	for _, e := range entries[1:] {
		if e.version != entries[0].version {
			return true
		}
	}
	return false
}

func encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, ferrors.InternalError("failed to encode sitemap").WithCause(err).Build()
	}
	return buf.Bytes(), nil
}
