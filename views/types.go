package views

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
// Empty fields fall back to the site values.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
