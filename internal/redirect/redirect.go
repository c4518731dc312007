package redirect

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"
	"text/template"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/foundation/normalization"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// Facility is the mechanism that carries out alias redirects.
type Facility string

const (
	FacilityStatic   Facility = "static"
	FacilityNetlify  Facility = "netlify"
	FacilityNginx    Facility = "nginx"
	FacilityDisabled Facility = "disabled"
)

var facilityNormalizer = normalization.NewNormalizer(map[string]Facility{
	"static":   FacilityStatic,
	"netlify":  FacilityNetlify,
	"nginx":    FacilityNginx,
	"disabled": FacilityDisabled,
}, FacilityStatic)

// ParseFacility normalizes raw; empty input is FacilityStatic.
func ParseFacility(raw string) (Facility, error) {
	return facilityNormalizer.NormalizeWithError(raw)
}

// Facilities lists the accepted facility names.
func Facilities() []string { return facilityNormalizer.ValidKeys() }

const (
	NetlifyPath = "_redirects"
	NginxPath   = ".etc/nginx/rewrite.conf"
	htmlType    = "text/html"
	textType    = "text/plain"
)

// Options selects the facility and the site the redirects are served from.
type Options struct {
	Facility Facility
	SiteURL  string
	Style    publish.ExtensionStyle
	// Logger receives skipped aliases. Nil uses slog.Default().
	Logger *slog.Logger
}

type redirect struct {
	alias *catalog.File
	from  string
	to    string
}

// Produce handles every alias in cat. Static fills alias contents with bounce pages; netlify and
// nginx return one configuration artifact and unpublish the aliases; disabled, or any facility
// not listed, unpublishes them.
func Produce(cat *catalog.Catalog, opts Options) ([]publish.Artifact, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	redirects := collect(cat, logger)
	if len(redirects) == 0 {
		return nil, nil
	}

	switch opts.Facility {
	case FacilityStatic, "":
		siteURL := strings.TrimSuffix(opts.SiteURL, "/")
		for _, r := range redirects {
			contents, err := bouncePage(r, siteURL)
			if err != nil {
				return nil, err
			}
			r.alias.Contents = contents
			r.alias.MediaType = htmlType
		}
		return nil, nil
	case FacilityNetlify:
		prefix, err := urlContext(opts.SiteURL)
		if err != nil {
			return nil, err
		}
		directoryRules := opts.Style == "" || opts.Style == publish.StyleDefault
		var rules []string
		for _, r := range redirects {
			cat.Unpublish(r.alias)
			rules = append(rules, prefix+r.from+" "+prefix+r.to+" 301")
			if directoryRules && strings.HasSuffix(r.from, "/") {
				rules = append(rules, prefix+r.from+"index.html "+prefix+r.to+" 301")
			}
		}
		return []publish.Artifact{configArtifact(NetlifyPath, rules)}, nil
	case FacilityNginx:
		prefix, err := urlContext(opts.SiteURL)
		if err != nil {
			return nil, err
		}
		rules := make([]string, 0, len(redirects))
		for _, r := range redirects {
			cat.Unpublish(r.alias)
			rules = append(rules, "location = "+prefix+r.from+" { return 301 "+prefix+r.to+"; }")
		}
		return []publish.Artifact{configArtifact(NginxPath, rules)}, nil
	default:
		if opts.Facility != FacilityDisabled {
			logger.Warn("Unknown redirect facility, aliases are not published", slog.String("facility", string(opts.Facility)))
		}
		for _, r := range redirects {
			cat.Unpublish(r.alias)
		}
		return nil, nil
	}
}

func collect(cat *catalog.Catalog, logger *slog.Logger) []redirect {
	var out []redirect
	for _, alias := range cat.FindBy(resource.Identity{Family: resource.FamilyAlias}) {
		target := cat.Target(alias)
		if target == nil || target.Pub == nil || alias.Pub == nil {
			logger.Warn("Skipping alias without published target", logfields.ID(alias.ID.Key()))
			continue
		}
		out = append(out, redirect{alias: alias, from: alias.Pub.URL, to: target.Pub.URL})
	}
	return out
}

// urlContext is the path of the site URL when the site is not served from the root.
func urlContext(siteURL string) (string, error) {
	if siteURL == "" {
		return "", nil
	}
	u, err := url.Parse(siteURL)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryConfig, "invalid site URL").
			WithContext("url", siteURL).
			Build()
	}
	return strings.TrimSuffix(u.Path, "/"), nil
}

func configArtifact(path string, rules []string) publish.Artifact {
	return publish.Artifact{
		Path:      path,
		URL:       "/" + path,
		MediaType: textType,
		Contents:  []byte(strings.Join(rules, "\n")),
	}
}

var bounceTemplate = template.Must(template.New("bounce").Parse(`<!DOCTYPE html>
<meta charset="utf-8">{{if .Canonical}}
<link rel="canonical" href="{{.Canonical}}">{{end}}
<script>location="{{.Relative}}"</script>
<meta http-equiv="refresh" content="0; url={{.Relative}}">
<meta name="robots" content="noindex">
<title>Redirect Notice</title>
<h1>Redirect Notice</h1>
<p>The page you requested has been relocated to <a href="{{.Relative}}">{{if .Canonical}}{{.Canonical}}{{else}}{{.Relative}}{{end}}</a>.</p>`))

func bouncePage(r redirect, siteURL string) ([]byte, error) {
	data := struct {
		Relative  string
		Canonical string
	}{Relative: publish.RelativeURL(r.from, r.to, "")}
	if siteURL != "" {
		data.Canonical = siteURL + r.to
	}
	var buf bytes.Buffer
	if err := bounceTemplate.Execute(&buf, data); err != nil {
		return nil, ferrors.InternalError("failed to render redirect page").WithCause(err).
			WithContext("id", r.alias.ID.Key()).
			Build()
	}
	return buf.Bytes(), nil
}
