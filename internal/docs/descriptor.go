package docs

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/doccatalog/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// DescriptorFilename is the name of the component descriptor at the root of a content source.
const DescriptorFilename = "component.yml"

// Descriptor is a parsed component descriptor.
type Descriptor struct {
	Name           string
	Version        string
	DisplayVersion string
	Title          string
	// Prerelease is set when the descriptor's prerelease key is true or a string.
	Prerelease bool
	// PrereleaseLabel holds a string prerelease value.
	PrereleaseLabel string
	StartPage       string
	Nav             []string
}

type rawDescriptor struct {
	// Scalars that may be null or non-strings are kept as nodes to read their literal text.
	Name           yaml.Node `yaml:"name"`
	Version        yaml.Node `yaml:"version"`
	DisplayVersion yaml.Node `yaml:"display_version"`
	Prerelease     yaml.Node `yaml:"prerelease"`
	Title          string    `yaml:"title"`
	StartPage      string    `yaml:"start_page"`
	Nav            []string  `yaml:"nav"`
}

type scalar struct {
	set   bool
	null  bool
	tag   string
	value string
}

// scalarOf reads node as a scalar. An absent key yields an unset scalar.
func scalarOf(field string, node yaml.Node) (scalar, error) {
	switch node.Kind {
	case 0:
		return scalar{}, nil
	case yaml.ScalarNode:
		tag := node.ShortTag()
		return scalar{set: true, null: tag == "!!null", tag: tag, value: node.Value}, nil
	default:
		return scalar{}, ferrors.ValidationError(field+" must be a scalar value").
			WithCause(derrors.ErrInvalidDescriptor).
			WithContext("line", node.Line).
			Build()
	}
}

// ParseDescriptor decodes a component descriptor. A missing name or version is an error; a null or
// false version marks the component as unversioned.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var raw rawDescriptor
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, ferrors.ValidationError("parse component descriptor: "+err.Error()).
			WithCause(derrors.ErrInvalidDescriptor).
			Build()
	}

	var fields [4]scalar
	for i, f := range []struct {
		name string
		node yaml.Node
	}{{"name", raw.Name}, {"version", raw.Version}, {"display_version", raw.DisplayVersion}, {"prerelease", raw.Prerelease}} {
		sc, err := scalarOf(f.name, f.node)
		if err != nil {
			return nil, err
		}
		fields[i] = sc
	}
	name, version, displayVersion, prerelease := fields[0], fields[1], fields[2], fields[3]

	if !name.set || name.null || strings.TrimSpace(name.value) == "" {
		return nil, ferrors.ValidationError("component descriptor is missing a name").
			WithCause(derrors.ErrInvalidDescriptor).
			Build()
	}
	if !version.set {
		return nil, ferrors.ValidationError("component descriptor is missing a version").
			WithCause(derrors.ErrInvalidDescriptor).
			WithContext("name", name.value).
			Build()
	}

	d := &Descriptor{
		Name:      name.value,
		Version:   version.value,
		Title:     raw.Title,
		StartPage: raw.StartPage,
		Nav:       raw.Nav,
	}
	if version.null || (version.tag == "!!bool" && version.value == "false") {
		d.Version = resource.UnversionedMarker
	}
	if displayVersion.set && !displayVersion.null {
		d.DisplayVersion = displayVersion.value
	}

	if prerelease.set && !prerelease.null {
		if prerelease.tag == "!!bool" {
			d.Prerelease, _ = strconv.ParseBool(prerelease.value)
		} else if prerelease.value != "" {
			d.Prerelease = true
			d.PrereleaseLabel = prerelease.value
		}
	}
	return d, nil
}

// ReadDescriptor reads and parses the descriptor file at path.
func ReadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.NotFoundError("component descriptor not found").
				WithCause(derrors.ErrDescriptorNotFound).
				WithContext("path", path).
				Build()
		}
		return nil, ferrors.FileSystemError("read component descriptor").WithCause(err).
			WithContext("path", path).
			Build()
	}
	d, err := ParseDescriptor(data)
	if err != nil {
		if ce, ok := ferrors.AsClassified(err); ok {
			return nil, ce.WithContext("path", path)
		}
		return nil, err
	}
	return d, nil
}
