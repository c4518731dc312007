package navigation

import "slices"

// Catalog holds the navigation forest of each component version.
type Catalog struct {
	sets map[string][]*Node
}

// NewCatalog returns an empty navigation catalog.
func NewCatalog() *Catalog {
	return &Catalog{sets: make(map[string][]*Node)}
}

func key(component, version string) string { return version + "@" + component }

// AddTree inserts tree into the forest of component version after every tree with an equal or
// lower Order, and returns the forest.
func (c *Catalog) AddTree(component, version string, tree *Node) []*Node {
	k := key(component, version)
	forest := c.sets[k]
	idx := slices.IndexFunc(forest, func(candidate *Node) bool { return candidate.Order > tree.Order })
	if idx < 0 {
		forest = append(forest, tree)
	} else {
		forest = slices.Insert(forest, idx, tree)
	}
	c.sets[k] = forest
	return forest
}

// GetNavigation returns the forest of component version, or nil.
func (c *Catalog) GetNavigation(component, version string) []*Node {
	return c.sets[key(component, version)]
}

// Len is the number of component versions with navigation.
func (c *Catalog) Len() int { return len(c.sets) }
