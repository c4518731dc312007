package resource

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
)

// ErrMalformedAddress is the cause of every address that does not match the grammar.
var ErrMalformedAddress = errors.New("malformed resource address")

// The delimiters @ : $ never occur inside a token. A single "x:" prefix names a module; a component
// always takes two, as in "c:m:" or "c::" for the root module.
var addressRx = regexp.MustCompile(`^(?:([^@:$]+)@)?(?:(?:([^@:$]+):)?(?:([^@:$]+))?:)?(?:([^@:$]+)\$)?([^@:$]+)$`)

const (
	groupVersion = 1 + iota
	groupComponent
	groupModule
	groupFamily
	groupRelative
)

// ParseOptions restricts and defaults the family of a parsed address.
type ParseOptions struct {
	// Permitted lists the families an explicit family token may name. Empty permits all.
	Permitted []Family
	// DefaultFamily applies when the address has no family token. Zero means FamilyPage.
	DefaultFamily Family
}

// Parse reads address against ctx. It fails only when address does not match the grammar.
//
// A family token outside the permitted set (or unknown) leaves Family as FamilyNone. When a component
// is given without a module, the module is RootModule and the version stays as written (possibly empty).
// Without a component, component and module come from ctx, as does the version when not written.
func Parse(address string, ctx Context, opts ParseOptions) (Identity, error) {
	m := addressRx.FindStringSubmatch(address)
	if m == nil {
		return Identity{}, ferrors.AddressError("address does not match version@component:module:family$relative").
			WithCause(ErrMalformedAddress).
			WithContext("address", address).
			Build()
	}

	family := opts.DefaultFamily
	if family == FamilyNone {
		family = FamilyPage
	}
	if token := m[groupFamily]; token != "" {
		f, ok := ParseFamily(token)
		if !ok || (len(opts.Permitted) > 0 && !slices.Contains(opts.Permitted, f)) {
			f = FamilyNone
		}
		family = f
	}

	id := Identity{
		Version:   m[groupVersion],
		Component: m[groupComponent],
		Module:    m[groupModule],
		Family:    family,
		Relative:  m[groupRelative],
	}
	if id.Family == FamilyPage && !strings.HasSuffix(id.Relative, PageExtension) {
		id.Relative += PageExtension
	}

	if id.Component != "" {
		if id.Module == "" {
			id.Module = RootModule
		}
	} else {
		id.Component = ctx.Component
		if id.Version == "" {
			id.Version = ctx.Version
		}
		if id.Module == "" {
			id.Module = ctx.Module
		}
	}
	return id, nil
}

// Format renders id as a fully-qualified address; Parse(Format(id)) yields id again.
func Format(id Identity) string {
	var b strings.Builder
	if id.Version != "" {
		b.WriteString(id.Version)
		b.WriteByte('@')
	}
	switch {
	case id.Component != "":
		b.WriteString(id.Component)
		b.WriteByte(':')
		b.WriteString(id.Module)
		b.WriteByte(':')
	case id.Module != "":
		b.WriteString(id.Module)
		b.WriteByte(':')
	}
	if id.Family.Valid() {
		b.WriteString(id.Family.String())
		b.WriteByte('$')
	}
	b.WriteString(id.Relative)
	return b.String()
}
