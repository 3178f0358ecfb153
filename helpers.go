package pubsite

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OGImageURL returns the absolute URL of the social preview image, or ""
// when none is configured. Absolute OGImage values are returned unchanged.
func OGImageURL(site SiteConfig) string {
	if site.OGImage == "" {
		return ""
	}
	if u, err := url.Parse(site.OGImage); err == nil && u.IsAbs() {
		return site.OGImage
	}
	base, err := url.Parse(site.Website)
	if err != nil {
		return site.OGImage
	}
	base.Path = path.Join("/", base.Path, site.OGImage)
	return base.String()
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(site SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      BuildURL(site.Website),
	}
	if site.Desc != "" {
		data["description"] = site.Desc
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if img := OGImageURL(site); img != "" {
		data["image"] = img
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
