// Package catalog is the authoritative registry of components, component versions, and content files.
//
// A Catalog owns identity uniqueness: every file is keyed by its resource identity and no two
// publishable files may share an output path. Files receive output and publish descriptors from the
// publish package when added. Cross-references resolve through the resource address grammar with
// the latest component version as the default.
//
// The Catalog is built, then queried. It does no internal locking; callers serialize mutation
// and may read concurrently once mutation has finished.
package catalog
