package markdown

import (
	"html"
	"log/slog"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/navigation"
)

const xrefPrefix = "xref:"

// xref:target[text] written as plain text; goldmark leaves it alone when no reference matches.
var xrefRx = regexp.MustCompile(`xref:([^\s\[\]]+)\[([^\]]*)\]`)

// NavLoader is a navigation.ListLoader for Markdown nav files.
type NavLoader struct {
	md     goldmark.Markdown
	logger *slog.Logger
}

// NewNavLoader returns a loader using the default goldmark parser.
func NewNavLoader(logger *slog.Logger) *NavLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &NavLoader{md: goldmark.New(), logger: logger}
}

var _ navigation.ListLoader = (*NavLoader)(nil)

// LoadLists parses the nav file and returns its top-level bullet lists.
func (l *NavLoader) LoadLists(navFile *catalog.File, cat *catalog.Catalog) ([]navigation.List, error) {
	source := navFile.Contents
	root := l.md.Parser().Parse(text.NewReader(source))
	r := &inlineRenderer{source: source, cat: cat, navFile: navFile}

	var lists []navigation.List
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		list, ok := n.(*gmast.List)
		if !ok || list.IsOrdered() {
			continue
		}
		title := ""
		if heading, ok := n.PreviousSibling().(*gmast.Heading); ok {
			title = r.render(heading)
		}
		lists = append(lists, navigation.List{Title: title, Items: r.items(list)})
	}
	l.logger.Debug("Parsed navigation file", logfields.ID(navFile.ID.Key()), logfields.Count(len(lists)))
	return lists, nil
}

type inlineRenderer struct {
	source  []byte
	cat     *catalog.Catalog
	navFile *catalog.File
}

func (r *inlineRenderer) items(list *gmast.List) []navigation.ListItem {
	var items []navigation.ListItem
	for n := list.FirstChild(); n != nil; n = n.NextSibling() {
		li, ok := n.(*gmast.ListItem)
		if !ok {
			continue
		}
		var item navigation.ListItem
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch block := c.(type) {
			case *gmast.List:
				item.Items = append(item.Items, r.items(block)...)
			case *gmast.TextBlock, *gmast.Paragraph:
				if item.Text == "" {
					item.Text = r.render(block)
				}
			}
		}
		items = append(items, item)
	}
	return items
}

// render converts the inline children of block to HTML.
func (r *inlineRenderer) render(block gmast.Node) string {
	var b strings.Builder
	r.inlines(&b, block)
	out := strings.TrimSpace(b.String())
	return xrefRx.ReplaceAllStringFunc(out, func(m string) string {
		sub := xrefRx.FindStringSubmatch(m)
		return r.pageLink(html.UnescapeString(sub[1]), sub[2])
	})
}

func (r *inlineRenderer) inlines(b *strings.Builder, parent gmast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gmast.Text:
			b.WriteString(html.EscapeString(string(node.Segment.Value(r.source))))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.WriteString(html.EscapeString(string(node.Value)))
		case *gmast.CodeSpan:
			b.WriteString("<code>")
			r.inlines(b, node)
			b.WriteString("</code>")
		case *gmast.Emphasis:
			tag := "em"
			if node.Level == 2 {
				tag = "strong"
			}
			b.WriteString("<" + tag + ">")
			r.inlines(b, node)
			b.WriteString("</" + tag + ">")
		case *gmast.AutoLink:
			u := html.EscapeString(string(node.URL(r.source)))
			b.WriteString(`<a href="` + u + `">` + u + `</a>`)
		case *gmast.Link:
			var content strings.Builder
			r.inlines(&content, node)
			dest := string(node.Destination)
			if ref, ok := pageRef(dest); ok {
				b.WriteString(r.pageLink(ref, content.String()))
			} else {
				b.WriteString(`<a href="` + html.EscapeString(dest) + `">` + content.String() + `</a>`)
			}
		case *gmast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				b.Write(seg.Value(r.source))
			}
		default:
			r.inlines(b, node)
		}
	}
}

func (r *inlineRenderer) pageLink(ref, content string) string {
	link := r.cat.ConvertPageRef(ref, content, r.navFile, false)
	if !link.Resolved {
		return `<a href="#" class="unresolved">` + html.EscapeString(link.Content) + `</a>`
	}
	if content == "" {
		link.Content = html.EscapeString(link.Content)
	}
	return `<a href="` + html.EscapeString(link.Target) + `" class="page">` + link.Content + `</a>`
}

// pageRef reports whether dest addresses a catalog page rather than a URL.
func pageRef(dest string) (string, bool) {
	if strings.HasPrefix(dest, xrefPrefix) {
		return strings.TrimPrefix(dest, xrefPrefix), true
	}
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "mailto:") {
		return "", false
	}
	address, _, _ := strings.Cut(dest, "#")
	return dest, strings.HasSuffix(address, ".adoc")
}
