// Package publish maps resource identities to output paths and public URLs.
//
// The mapping is a pure function of the identity, its media type, the family it acts as, and the
// configured HTML extension style. Version "master" and module "ROOT" never appear in paths.
package publish
