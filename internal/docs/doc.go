// Package docs discovers component versions in local content sources.
//
// A content source is a directory (optionally narrowed by a start path) holding an component.yml
// component descriptor and a modules/ tree. Discovery reads the descriptor and every file below the
// start path into a catalog.Bundle that catalog.Classify allocates to families.
package docs
