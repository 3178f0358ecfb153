package views

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/eringen/pubsite"
)

// SocialIconPath returns the icon asset path for a platform name.
func SocialIconPath(name string) string {
	return "/public/icons/socials/" + strings.ToLower(name) + ".svg"
}

// LogoSrc returns the logo asset path, picking the vector or raster file.
func LogoSrc(logo pubsite.LogoImage) string {
	if logo.SVG {
		return "/public/logo.svg"
	}
	return "/public/logo.png"
}

// pageTitle prefers the page title and appends the site title to it.
func pageTitle(site pubsite.SiteConfig, page PageMeta) string {
	if page.Title == "" || page.Title == site.Title {
		return site.Title
	}
	return page.Title + " | " + site.Title
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// safeURL returns raw when it is an absolute http, https or mailto URL,
// and "" otherwise.
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return val
	default:
		return ""
	}
}
