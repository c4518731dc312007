package docs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/doccatalog/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Descriptor
	}{
		{
			name: "full",
			yaml: "name: the-component\nversion: '1.0'\ndisplay_version: One\ntitle: The Component\n" +
				"start_page: intro.adoc\nnav:\n- modules/ROOT/nav.adoc\n",
			want: Descriptor{
				Name: "the-component", Version: "1.0", DisplayVersion: "One", Title: "The Component",
				StartPage: "intro.adoc", Nav: []string{"modules/ROOT/nav.adoc"},
			},
		},
		{
			name: "numeric version keeps its literal text",
			yaml: "name: c\nversion: 1.10\n",
			want: Descriptor{Name: "c", Version: "1.10"},
		},
		{
			name: "null version is unversioned",
			yaml: "name: c\nversion: ~\n",
			want: Descriptor{Name: "c", Version: resource.UnversionedMarker},
		},
		{
			name: "false version is unversioned",
			yaml: "name: c\nversion: false\n",
			want: Descriptor{Name: "c", Version: resource.UnversionedMarker},
		},
		{
			name: "boolean prerelease",
			yaml: "name: c\nversion: '2.0'\nprerelease: true\n",
			want: Descriptor{Name: "c", Version: "2.0", Prerelease: true},
		},
		{
			name: "string prerelease",
			yaml: "name: c\nversion: '2.0'\nprerelease: -beta.1\n",
			want: Descriptor{Name: "c", Version: "2.0", Prerelease: true, PrereleaseLabel: "-beta.1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDescriptor([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseDescriptor_Invalid(t *testing.T) {
	for name, input := range map[string]string{
		"missing name":    "version: '1.0'\n",
		"empty name":      "name: ''\nversion: '1.0'\n",
		"missing version": "name: c\n",
		"not yaml":        "name: [\n",
		"list version":    "name: c\nversion: [1]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDescriptor([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, derrors.ErrInvalidDescriptor))
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		})
	}
}

func TestReadDescriptor_NotFound(t *testing.T) {
	_, err := ReadDescriptor(filepath.Join(t.TempDir(), DescriptorFilename))
	require.Error(t, err)
	assert.ErrorIs(t, err, derrors.ErrDescriptorNotFound)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}
