package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/pubsite"
)

// SocialLinks renders the active links as an icon list in display order.
// Inactive links and links whose href is not http, https or mailto are
// skipped.
func SocialLinks(links []pubsite.SocialLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		n := 0
		for _, l := range pubsite.ActiveSocials(links) {
			href := safeURL(l.Href)
			if href == "" {
				continue
			}
			if n == 0 {
				b.WriteString(`<ul class="social-links">`)
			}
			n++
			b.WriteString(`<li><a href="`)
			b.WriteString(templ.EscapeString(href))
			b.WriteString(`" title="`)
			b.WriteString(templ.EscapeString(l.LinkTitle))
			b.WriteString(`" target="_blank" rel="noopener noreferrer"><img src="`)
			b.WriteString(templ.EscapeString(SocialIconPath(l.Name)))
			b.WriteString(`" alt="`)
			b.WriteString(templ.EscapeString(l.Name))
			b.WriteString(`"><span class="sr-only">`)
			b.WriteString(templ.EscapeString(l.LinkTitle))
			b.WriteString(`</span></a></li>`)
		}
		if n == 0 {
			return nil
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Logo renders the site logo image, or the plain site title when the logo
// is disabled.
func Logo(site pubsite.SiteConfig, logo pubsite.LogoImage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<a href="/" class="logo">`)
		if logo.Enable {
			b.WriteString(`<img src="`)
			b.WriteString(templ.EscapeString(LogoSrc(logo)))
			b.WriteString(`" alt="`)
			b.WriteString(templ.EscapeString(site.Title))
			b.WriteString(`" width="`)
			b.WriteString(itoa(logo.Width))
			b.WriteString(`" height="`)
			b.WriteString(itoa(logo.Height))
			b.WriteString(`">`)
		} else {
			b.WriteString(templ.EscapeString(site.Title))
		}
		b.WriteString(`</a>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HeadMeta renders the <head> metadata of a page: title, description,
// canonical link, OpenGraph tags, locale and color scheme. og:locale carries
// the first configured locale as written, not its parsed form, so
// unregistered regions such as "en-EN" survive as "en_EN".
func HeadMeta(cfg pubsite.Config, page PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		site := cfg.Site
		desc := firstNonEmpty(page.Description, site.Desc)
		canonical := firstNonEmpty(page.URL, pubsite.BuildURL(site.Website))
		ogType := firstNonEmpty(page.OGType, "website")

		var b strings.Builder
		meta := func(attr, key, value string) {
			if value == "" {
				return
			}
			b.WriteString(`<meta ` + attr + `="` + key + `" content="`)
			b.WriteString(templ.EscapeString(value))
			b.WriteString(`">`)
		}

		b.WriteString(`<title>`)
		b.WriteString(templ.EscapeString(pageTitle(site, page)))
		b.WriteString(`</title>`)
		meta("name", "description", desc)
		meta("name", "author", site.Author)
		b.WriteString(`<link rel="canonical" href="`)
		b.WriteString(templ.EscapeString(canonical))
		b.WriteString(`">`)
		meta("property", "og:title", pageTitle(site, page))
		meta("property", "og:description", desc)
		meta("property", "og:url", canonical)
		meta("property", "og:type", ogType)
		meta("property", "og:image", pubsite.OGImageURL(site))
		if !cfg.Locale.IsDefault() {
			meta("property", "og:locale", strings.ReplaceAll(cfg.Locale[0], "-", "_"))
		}
		if site.LightAndDarkMode {
			meta("name", "color-scheme", "light dark")
		}
		b.WriteString(`<script type="application/ld+json">`)
		b.WriteString(pubsite.WebsiteJsonLD(site))
		b.WriteString(`</script>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
