package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pubsite"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestSocialLinksRendersOnlyActiveInOrder(t *testing.T) {
	site := pubsite.SiteConfig{Title: "Code Shorts"}
	links := []pubsite.SocialLink{
		pubsite.NewSocial(site, pubsite.Github, "https://github.com/a", true),
		pubsite.NewSocial(site, pubsite.Twitter, "https://twitter.com/a", false),
		pubsite.NewSocial(site, pubsite.Mastodon, "https://mastodon.social/@a", true),
	}

	html := render(t, SocialLinks(links))

	assert.Contains(t, html, `href="https://github.com/a"`)
	assert.Contains(t, html, `title=" Code Shorts on Github"`)
	assert.Contains(t, html, `src="/public/icons/socials/mastodon.svg"`)
	assert.NotContains(t, html, "twitter.com")
	assert.Less(t, strings.Index(html, "github.com"), strings.Index(html, "mastodon.social"))
	assert.Equal(t, 2, strings.Count(html, "<li>"))
}

func TestSocialLinksMilosProfile(t *testing.T) {
	cfg := pubsite.MustLoad("milos")

	html := render(t, SocialLinks(cfg.Socials))

	assert.Equal(t, 1, strings.Count(html, "<li>"))
	assert.Contains(t, html, `href="https://twitter.com/miloshinjo"`)
	assert.Contains(t, html, `title=" Miloš Dželetović on Twitter"`)
}

func TestSocialLinksEscapes(t *testing.T) {
	site := pubsite.SiteConfig{Title: `<b>"x"</b>`}
	links := []pubsite.SocialLink{pubsite.NewSocial(site, pubsite.Github, "https://github.com/a", true)}

	html := render(t, SocialLinks(links))

	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;b&gt;")
}

func TestSocialLinksEmpty(t *testing.T) {
	assert.Empty(t, render(t, SocialLinks(nil)))
}

func TestLogo(t *testing.T) {
	cfg := pubsite.Load()

	html := render(t, Logo(cfg.Site, cfg.Logo))
	assert.Contains(t, html, `src="/public/logo.png"`)
	assert.Contains(t, html, `width="70"`)
	assert.Contains(t, html, `height="35"`)

	svg := cfg.Logo
	svg.SVG = true
	assert.Contains(t, render(t, Logo(cfg.Site, svg)), `src="/public/logo.svg"`)

	disabled := cfg.Logo
	disabled.Enable = false
	html = render(t, Logo(cfg.Site, disabled))
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "Code Shorts")
}

func TestHeadMetaDefaults(t *testing.T) {
	cfg := pubsite.Load()

	html := render(t, HeadMeta(cfg, PageMeta{}))

	assert.Contains(t, html, "<title>Code Shorts</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://astro-paper.pages.dev/">`)
	assert.Contains(t, html, `<meta property="og:type" content="website">`)
	assert.Contains(t, html, `<meta property="og:image" content="https://astro-paper.pages.dev/astropaper-og.jpg">`)
	assert.Contains(t, html, `<meta property="og:locale" content="en_EN">`)
	assert.Contains(t, html, `<meta name="color-scheme" content="light dark">`)
	assert.Contains(t, html, `application/ld+json`)
}

func TestHeadMetaPageOverrides(t *testing.T) {
	cfg := pubsite.Load()
	cfg.Site.LightAndDarkMode = false
	cfg.Locale = nil

	html := render(t, HeadMeta(cfg, PageMeta{
		Title:       "Hello",
		Description: "A post",
		URL:         "https://astro-paper.pages.dev/posts/hello/",
		OGType:      "article",
	}))

	assert.Contains(t, html, "<title>Hello | Code Shorts</title>")
	assert.Contains(t, html, `<meta name="description" content="A post">`)
	assert.Contains(t, html, `<meta property="og:type" content="article">`)
	assert.NotContains(t, html, "color-scheme")
	assert.NotContains(t, html, "og:locale")
}

func TestSocialLinksSkipsUnsafeHref(t *testing.T) {
	site := pubsite.SiteConfig{Title: "Code Shorts"}
	tests := []struct {
		name string
		href string
	}{
		{"javascript", "javascript:alert(1)"},
		{"javascript upper case", "JavaScript:alert(1)"},
		{"data", "data:text/html,<script>alert(1)</script>"},
		{"relative", "github.com/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := []pubsite.SocialLink{
				{Name: "Github", Href: tt.href, LinkTitle: pubsite.ComputeLinkTitle(site.Title, "Github"), Active: true},
				pubsite.NewSocial(site, pubsite.Mail, "mailto:a@example.com", true),
			}

			html := render(t, SocialLinks(links))

			assert.NotContains(t, strings.ToLower(html), "javascript:")
			assert.NotContains(t, html, "data:")
			assert.Equal(t, 1, strings.Count(html, "<li>"))
			assert.Contains(t, html, `href="mailto:a@example.com"`)
		})
	}
}

func TestSocialLinksAllUnsafeRendersNothing(t *testing.T) {
	links := []pubsite.SocialLink{{Name: "Github", Href: "javascript:alert(1)", Active: true}}
	assert.Empty(t, render(t, SocialLinks(links)))
}

func TestHeadMetaLocaleKeepsConfiguredSpelling(t *testing.T) {
	cfg := pubsite.Load()
	cfg.Locale = pubsite.Locale{"pt-BR"}

	html := render(t, HeadMeta(cfg, PageMeta{}))
	assert.Contains(t, html, `<meta property="og:locale" content="pt_BR">`)
}
