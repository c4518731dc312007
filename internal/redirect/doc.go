// Package redirect produces redirects for page aliases in the configured facility: static bounce
// pages, a Netlify _redirects file, an nginx rewrite configuration, or none (aliases unpublished).
package redirect
