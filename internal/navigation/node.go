package navigation

import "strings"

// URLType classifies the target of a navigation entry.
type URLType string

const (
	URLInternal URLType = "internal"
	URLExternal URLType = "external"
	URLFragment URLType = "fragment"
)

// Node is one entry of a navigation tree. Root nodes carry Order, which interleaves the trees
// contributed by several lists of one nav file.
type Node struct {
	Content string  `json:"content,omitempty"`
	URL     string  `json:"url,omitempty"`
	URLType URLType `json:"urlType,omitempty"`
	Hash    string  `json:"hash,omitempty"`
	Items   []*Node `json:"items,omitempty"`
	Root    bool    `json:"root,omitempty"`
	Order   float64 `json:"order,omitempty"`
	// Discrete marks a synthetic breadcrumb for a page absent from the navigation.
	Discrete bool `json:"discrete,omitempty"`
}

// Internal reports whether n links to a page of the site.
func (n *Node) Internal() bool { return n.URLType == URLInternal }

// URLWithoutHash is URL minus its fragment.
func (n *Node) URLWithoutHash() string {
	if n.Hash != "" {
		return strings.TrimSuffix(n.URL, n.Hash)
	}
	return n.URL
}
