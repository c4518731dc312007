package catalog

import (
	"log/slog"

	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/metrics"
	"git.home.luguber.info/inful/doccatalog/internal/publish"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// Catalog indexes content files by identity and components by name.
type Catalog struct {
	style      publish.ExtensionStyle
	files      map[string]*File
	order      []string
	outPaths   map[string]string
	components map[string]*Component

	versionCount int

	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Catalog) {
		if r != nil {
			c.recorder = r
		}
	}
}

// New returns an empty Catalog computing URLs in the given extension style.
func New(style publish.ExtensionStyle, opts ...Option) *Catalog {
	if style == "" {
		style = publish.StyleDefault
	}
	c := &Catalog{
		style:      style,
		files:      make(map[string]*File),
		outPaths:   make(map[string]string),
		components: make(map[string]*Component),
		logger:     slog.Default(),
		recorder:   metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Style is the extension style URLs are computed in.
func (c *Catalog) Style() publish.ExtensionStyle { return c.style }

// AddFile registers f. Publishable files (page, image, attachment, or an alias of one) that are not
// hidden receive output and publish descriptors unless already set; nav files receive a publish
// descriptor only. Nothing is stored when an error is returned.
func (c *Catalog) AddFile(f *File) (*File, error) {
	if !f.ID.Family.Valid() {
		return nil, ferrors.ValidationError("file has no family").
			WithContext("path", f.Path).
			Build()
	}
	key := f.ID.Key()
	if _, exists := c.files[key]; exists {
		c.recorder.IncConflict(metrics.ConflictIdentity)
		return nil, ferrors.ConflictError("duplicate "+f.ID.Family.String()).
			WithCause(ErrDuplicateIdentity).
			WithContext("id", key).
			Build()
	}

	acting := f.actingFamily()
	publishable := f.Out != nil
	if !publishable && acting.Publishable() && !f.ID.Hidden() {
		publishable = true
		f.Out = publish.ComputeOut(f.ID, f.MediaType, acting, c.style)
	}
	if f.Pub == nil && (publishable || acting == resource.FamilyNav) {
		f.Pub = publish.ComputePub(f.ID, f.Out, acting, c.style)
	}

	if f.Out != nil {
		if owner, taken := c.outPaths[f.Out.Path]; taken {
			c.recorder.IncConflict(metrics.ConflictPath)
			return nil, ferrors.ConflictError("output path already taken").
				WithCause(ErrPublishPathCollision).
				WithContext("id", key).
				WithContext("path", f.Out.Path).
				WithContext("owner", owner).
				Build()
		}
		c.outPaths[f.Out.Path] = key
	}
	f.expandEditURL()

	c.files[key] = f
	c.order = append(c.order, key)
	c.recorder.IncRegistration(f.ID.Family.String())
	c.logger.Debug("Added file",
		logfields.ID(key), logfields.Family(f.ID.Family.String()), logfields.URL(f.URL()))
	return f, nil
}

// Unpublish removes the output descriptor of f so that it is not written, freeing its path.
func (c *Catalog) Unpublish(f *File) {
	if f.Out == nil {
		return
	}
	if c.outPaths[f.Out.Path] == f.ID.Key() {
		delete(c.outPaths, f.Out.Path)
	}
	f.Out = nil
}

// GetByID returns the file with exactly this identity, or nil.
func (c *Catalog) GetByID(id resource.Identity) *File {
	return c.files[id.Key()]
}

// GetByPath returns the file of a component version with the given source path, or nil.
func (c *Catalog) GetByPath(component, version, path string) *File {
	for _, key := range c.order {
		f := c.files[key]
		if f.Path == path && f.ID.Component == component && f.ID.Version == version {
			return f
		}
	}
	return nil
}

// FindBy returns the files matching every non-zero field of criteria, in insertion order.
func (c *Catalog) FindBy(criteria resource.Identity) []*File {
	var out []*File
	for _, key := range c.order {
		f := c.files[key]
		if matches(f.ID, criteria) {
			out = append(out, f)
		}
	}
	return out
}

func matches(id, criteria resource.Identity) bool {
	return (criteria.Component == "" || id.Component == criteria.Component) &&
		(criteria.Version == "" || id.Version == criteria.Version) &&
		(criteria.Module == "" || id.Module == criteria.Module) &&
		(criteria.Family == resource.FamilyNone || id.Family == criteria.Family) &&
		(criteria.Relative == "" || id.Relative == criteria.Relative)
}

// GetFiles returns all files in insertion order.
func (c *Catalog) GetFiles() []*File {
	out := make([]*File, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.files[key])
	}
	return out
}

// Target returns the file an alias points to, or nil when f is not an alias or the target is gone.
func (c *Catalog) Target(f *File) *File {
	if !f.IsAlias() {
		return nil
	}
	return c.GetByID(*f.Rel)
}

// follow returns the target of an alias, or f itself.
func (c *Catalog) follow(f *File) *File {
	if target := c.Target(f); target != nil {
		return target
	}
	return f
}

// PublishedPages returns the pages that have an output path, in insertion order.
func (c *Catalog) PublishedPages() []*File {
	var out []*File
	for _, key := range c.order {
		if f := c.files[key]; f.ID.Family == resource.FamilyPage && f.Out != nil {
			out = append(out, f)
		}
	}
	return out
}
