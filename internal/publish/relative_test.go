package publish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeURL(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		hash     string
		expected string
	}{
		{"sibling file", "/c/1.0/a.html", "/c/1.0/b.html", "", "b.html"},
		{"sibling with hash", "/c/1.0/a.html", "/c/1.0/b.html", "#s", "b.html#s"},
		{"other version", "/c/1.0/x/a.html", "/c/2.0/b.html", "", "../../2.0/b.html"},
		{"directory target", "/c/1.0/a.html", "/c/1.0/", "", "./"},
		{"from directory to parent", "/c/1.0/guide/", "/c/1.0/", "", "../"},
		{"from directory to other component", "/c/1.0/", "/d/", "", "../../d/"},
		{"into subdirectory", "/c/1.0/", "/c/1.0/guide/", "#top", "guide/#top"},
		{"same file", "/c/1.0/a.html", "/c/1.0/a.html", "", "a.html"},
		{"same file with hash", "/c/1.0/a.html", "/c/1.0/a.html", "#s", "#s"},
		{"same directory", "/c/1.0/", "/c/1.0/", "", "./"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RelativeURL(tt.from, tt.to, tt.hash))
		})
	}
}
