package catalog

import "errors"

var (
	// ErrDuplicateIdentity marks a second file with an existing identity, or a second registration
	// of a component version.
	ErrDuplicateIdentity = errors.New("duplicate identity")
	// ErrPublishPathCollision marks a file whose output path is already taken by another file.
	ErrPublishPathCollision = errors.New("publish path collision")
	// ErrInvalidAlias marks a page alias that references itself, an existing page, or no page at all.
	ErrInvalidAlias = errors.New("invalid page alias")
	// ErrMissingStartPage marks a configured start page that does not resolve.
	ErrMissingStartPage = errors.New("start page not found")
)
