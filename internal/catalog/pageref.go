package catalog

import (
	"strings"

	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// PageLink is the content and target of a converted page reference.
type PageLink struct {
	Content  string
	Target   string
	Resolved bool
}

// ConvertPageRef turns ref (a page address with optional #fragment) found in current into a link.
// Unresolved references target "#" with the qualified address as content; malformed references
// target "#" with the raw ref as content. With relativize the target is relative to current's URL.
func (c *Catalog) ConvertPageRef(ref, content string, current *File, relativize bool) PageLink {
	address, fragment, hasFragment := strings.Cut(ref, "#")
	hash := ""
	if hasFragment && fragment != "" {
		hash = "#" + fragment
	}

	target, err := c.ResolvePage(address, resource.ContextOf(current.ID))
	if err != nil {
		c.logger.Warn("Invalid page reference", logfields.Address(ref), logfields.Error(err))
		return PageLink{Content: ref, Target: "#"}
	}
	if target != nil {
		target = c.follow(target)
	}
	if target == nil || target.Pub == nil {
		c.logger.Warn("Unresolved page reference", logfields.Address(ref), logfields.ID(current.ID.Key()))
		return PageLink{Content: withExtension(address) + hash, Target: "#"}
	}

	link := PageLink{Content: content, Resolved: true}
	if relativize && current.Pub != nil {
		link.Target = publish.RelativeURL(current.Pub.URL, target.Pub.URL, hash)
	} else {
		link.Target = target.Pub.URL + hash
	}
	if link.Content == "" {
		link.Content = withExtension(address) + hash
	}
	return link
}

func withExtension(address string) string {
	if strings.HasSuffix(address, resource.PageExtension) {
		return address
	}
	return address + resource.PageExtension
}
