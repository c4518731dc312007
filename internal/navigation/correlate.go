package navigation

import "slices"

// Context is the position of a page in a navigation forest.
type Context struct {
	Current *Node
	// Breadcrumbs are the ancestors of Current that have content, root first, then Current.
	Breadcrumbs []*Node
	Parent      *Node
	Previous    *Node
	Next        *Node
}

type frame struct {
	node      *Node
	ancestors []*Node
}

// Correlate locates url in forest. The first internal node whose URL without fragment equals url
// (depth-first, document order) is current; previous and next are the nearest internal nodes before
// and after it. When nothing matches and title is set, the result holds a single discrete breadcrumb.
func Correlate(forest []*Node, url, title string) Context {
	var (
		ctx       Context
		previous  *Node
		ancestors []*Node
	)
	stack := make([]frame, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: forest[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node

		if ctx.Current != nil {
			if n.Internal() {
				ctx.Next = n
				break
			}
		} else if n.Internal() {
			if n.URLWithoutHash() == url {
				ctx.Current = n
				ctx.Previous = previous
				ancestors = f.ancestors
			} else {
				previous = n
			}
		}

		childAncestors := append(slices.Clip(f.ancestors), n)
		for i := len(n.Items) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: n.Items[i], ancestors: childAncestors})
		}
	}

	if ctx.Current == nil {
		if title == "" {
			return Context{}
		}
		return Context{Breadcrumbs: []*Node{{Content: title, URL: url, URLType: URLInternal, Discrete: true}}}
	}

	for i := len(ancestors) - 1; i >= 0; i-- {
		if a := ancestors[i]; a.Content != "" && a.Internal() {
			ctx.Parent = a
			break
		}
	}
	for _, a := range ancestors {
		if a.Content != "" {
			ctx.Breadcrumbs = append(ctx.Breadcrumbs, a)
		}
	}
	ctx.Breadcrumbs = append(ctx.Breadcrumbs, ctx.Current)
	return ctx
}
