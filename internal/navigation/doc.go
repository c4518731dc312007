// Package navigation builds navigation trees from nav files, stores them per component version,
// and correlates a page URL with its place in a navigation forest (breadcrumbs, previous, next).
package navigation
