package publish

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

const (
	imagesDir      = "_images"
	attachmentsDir = "_attachments"
	htmlExt        = ".html"
	indexHTML      = "index.html"
)

// Out describes where content is written, relative to the site root.
type Out struct {
	Dirname        string `json:"dirname"`
	Basename       string `json:"basename"`
	Path           string `json:"path"`
	ModuleRootPath string `json:"module_root_path"`
	RootPath       string `json:"root_path"`
}

// Pub describes how content is addressed on the published site.
type Pub struct {
	URL            string `json:"url"`
	ModuleRootPath string `json:"module_root_path,omitempty"`
	RootPath       string `json:"root_path,omitempty"`
	CanonicalURL   string `json:"canonical_url,omitempty"`
}

// Compute returns the output and publish descriptors for id acting as family under style.
// Publishable families get both; nav gets only a synthetic directory URL; other families get neither.
func Compute(id resource.Identity, mediaType string, family resource.Family, style ExtensionStyle) (*Out, *Pub) {
	switch family {
	case resource.FamilyPage, resource.FamilyImage, resource.FamilyAttachment:
		out := ComputeOut(id, mediaType, family, style)
		return out, ComputePub(id, out, family, style)
	case resource.FamilyNav:
		return nil, ComputePub(id, nil, family, style)
	case resource.FamilyNone, resource.FamilyPartial, resource.FamilyExample, resource.FamilyAlias, resource.FamilyStaticAsset:
		return nil, nil
	}
	return nil, nil
}

// ComputeOut returns the on-disk location of id. Pages with markup media type become .html files;
// images and attachments live under per-family directories of their module.
func ComputeOut(id resource.Identity, mediaType string, family resource.Family, style ExtensionStyle) *Out {
	modulePath := path.Join(id.Component, versionSegment(id.Version), moduleSegment(id.Module))

	stem := id.Stem()
	basename := id.Basename()
	if mediaType == resource.MarkupMediaType {
		basename = stem + htmlExt
	}
	indexifySegment := ""
	if family == resource.FamilyPage && style == StyleIndexify && stem != "index" {
		basename = indexHTML
		indexifySegment = stem
	}

	familySegment := ""
	switch family {
	case resource.FamilyImage:
		familySegment = imagesDir
	case resource.FamilyAttachment:
		familySegment = attachmentsDir
	}

	dirname := path.Join(modulePath, familySegment, path.Dir(id.Relative), indexifySegment)
	if dirname == "" {
		dirname = "."
	}
	return &Out{
		Dirname:        dirname,
		Basename:       basename,
		Path:           path.Join(dirname, basename),
		ModuleRootPath: upPath(depth(dirname) - depth(modulePath)),
		RootPath:       upPath(depth(dirname)),
	}
}

// ComputePub returns the public URL of id. out may be nil only for the nav family.
func ComputePub(id resource.Identity, out *Out, family resource.Family, style ExtensionStyle) *Pub {
	pub := &Pub{}
	switch {
	case family == resource.FamilyNav:
		segments := []string{id.Component}
		if v := versionSegment(id.Version); v != "" {
			segments = append(segments, v)
		}
		if m := moduleSegment(id.Module); m != "" {
			segments = append(segments, m)
		}
		// only used to resolve relative references inside navigation files
		pub.URL = "/" + strings.Join(segments, "/") + "/"
		pub.ModuleRootPath = "."
	case family == resource.FamilyPage:
		segments := strings.Split(out.Path, "/")
		last := len(segments) - 1
		switch style {
		case StyleIndexify:
			segments[last] = ""
		case StyleDrop:
			segments[last] = dropExtension(segments[last])
		default:
			if segments[last] == indexHTML {
				segments[last] = ""
			}
		}
		pub.URL = "/" + strings.Join(segments, "/")
	default:
		pub.URL = "/" + out.Path
	}

	if out != nil {
		pub.ModuleRootPath = out.ModuleRootPath
		pub.RootPath = out.RootPath
	}
	return pub
}

func dropExtension(segment string) string {
	if segment == indexHTML {
		return ""
	}
	return strings.TrimSuffix(segment, htmlExt)
}

func versionSegment(version string) string {
	if version == resource.UnversionedMarker {
		return ""
	}
	return version
}

func moduleSegment(module string) string {
	if module == resource.RootModule {
		return ""
	}
	return module
}

func depth(dir string) int {
	if dir == "" || dir == "." {
		return 0
	}
	return strings.Count(dir, "/") + 1
}

func upPath(n int) string {
	if n <= 0 {
		return "."
	}
	return strings.TrimSuffix(strings.Repeat("../", n), "/")
}
