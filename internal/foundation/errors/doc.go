// Package errors provides the classified error primitives used across doccatalog.
//
// Catalog failures carry a category (address, already_exists, alias, not_found, ...), a severity and
// structured context. Domain packages keep a sentinel per error kind and attach it as the cause, so
// callers can match with the standard library:
//
//	err := errors.NewError(errors.CategoryAlreadyExists, "duplicate page").
//		Fatal().
//		WithCause(catalog.ErrDuplicateIdentity).
//		WithContext("id", key).
//		Build()
//
//	stderrors.Is(err, catalog.ErrDuplicateIdentity) // true
package errors
