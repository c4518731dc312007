package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_AddTreeKeepsOrderStable(t *testing.T) {
	c := NewCatalog()
	first := &Node{Content: "first", Order: 1}
	second := &Node{Content: "second", Order: 1}
	c.AddTree("c", "1.0", first)
	c.AddTree("c", "1.0", &Node{Content: "zero", Order: 0})
	c.AddTree("c", "1.0", second)
	forest := c.AddTree("c", "1.0", &Node{Content: "half", Order: 0.5})

	contents := make([]string, 0, len(forest))
	for _, n := range forest {
		contents = append(contents, n.Content)
	}
	assert.Equal(t, []string{"zero", "half", "first", "second"}, contents)
	assert.Equal(t, forest, c.GetNavigation("c", "1.0"))
	assert.Nil(t, c.GetNavigation("c", "2.0"))
	assert.Equal(t, 1, c.Len())
}
