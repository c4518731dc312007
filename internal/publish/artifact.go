package publish

// Artifact is a generated site file that has no identity in the content catalog (redirect rules,
// sitemaps). Path is relative to the site root.
type Artifact struct {
	Path      string
	URL       string
	MediaType string
	Contents  []byte
}
