// Package markdown loads navigation lists from Markdown nav files.
//
// Top-level bullet lists become navigation lists; a heading directly above a list is its title.
// Links to .adoc files, and xref:page.adoc[text] macros, are page references resolved through the
// content catalog and rendered as anchors with class "page" and a root-relative href.
package markdown
