package navigation

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// pageRole is the anchor class that marks a converted page reference.
const pageRole = "page"

// List is a rendered list found in a nav file. Title and item texts are HTML fragments.
type List struct {
	Title string
	Items []ListItem
}

// ListItem is one rendered list entry with its nested entries.
type ListItem struct {
	Text  string
	Items []ListItem
}

// BuildTree converts a rendered list into a navigation tree.
func BuildTree(title string, items []ListItem) *Node {
	node := &Node{}
	if title != "" {
		node = partition(title)
	}
	if len(items) > 0 {
		node.Items = make([]*Node, 0, len(items))
		for _, item := range items {
			node.Items = append(node.Items, BuildTree(item.Text, item.Items))
		}
	}
	return node
}

// partition splits formatted content into link content, URL, and URL type using its first anchor.
func partition(content string) *Node {
	if !strings.Contains(content, "<a") {
		return &Node{Content: content}
	}
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return &Node{Content: content}
	}
	var anchor *html.Node
	for _, n := range nodes {
		if anchor = findAnchor(n); anchor != nil {
			break
		}
	}
	if anchor == nil {
		return &Node{Content: content}
	}
	href, ok := attr(anchor, "href")
	if !ok || href == "" {
		return &Node{Content: content}
	}

	node := &Node{Content: innerHTML(anchor), URL: href}
	class, _ := attr(anchor, "class")
	switch {
	case slices.Contains(strings.Fields(class), pageRole):
		node.URLType = URLInternal
		if idx := strings.IndexByte(href, '#'); idx >= 0 {
			node.Hash = href[idx:]
		}
	case strings.HasPrefix(href, "#"):
		node.URLType = URLFragment
		node.Hash = href
	default:
		node.URLType = URLExternal
	}
	return node
}

func findAnchor(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if a := findAnchor(c); a != nil {
			return a
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func innerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}
