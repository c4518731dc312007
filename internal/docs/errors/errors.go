// Package errors provides sentinel errors for component source discovery.
package errors

import "errors"

var (
	// ErrSourceNotFound indicates a configured content source (path plus start path) does not exist.
	ErrSourceNotFound = errors.New("content source not found")

	// ErrDescriptorNotFound indicates a content source has no component descriptor.
	ErrDescriptorNotFound = errors.New("component descriptor not found")

	// ErrInvalidDescriptor indicates a component descriptor could not be parsed or lacks required keys.
	ErrInvalidDescriptor = errors.New("invalid component descriptor")

	// ErrSourceWalkFailed indicates filesystem traversal of a content source failed.
	ErrSourceWalkFailed = errors.New("content source walk failed")

	// ErrFileReadFailed indicates reading a discovered file failed.
	ErrFileReadFailed = errors.New("content file read failed")
)
