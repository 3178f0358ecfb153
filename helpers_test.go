package pubsite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://astro-paper.pages.dev/", nil, "https://astro-paper.pages.dev/"},
		{"https://example.com", []string{"posts", "hello"}, "https://example.com/posts/hello/"},
		{"https://example.com/blog/", []string{"tags"}, "https://example.com/blog/tags/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segments...))
	}
}

func TestOGImageURL(t *testing.T) {
	site := Load().Site
	assert.Equal(t, "https://astro-paper.pages.dev/astropaper-og.jpg", OGImageURL(site))

	site.OGImage = "https://cdn.example.com/og.png"
	assert.Equal(t, "https://cdn.example.com/og.png", OGImageURL(site))

	site.OGImage = ""
	assert.Equal(t, "", OGImageURL(site))
}

func TestWebsiteJsonLD(t *testing.T) {
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(WebsiteJsonLD(Load().Site)), &data))

	assert.Equal(t, "WebSite", data["@type"])
	assert.Equal(t, "Code Shorts", data["name"])
	assert.Equal(t, "https://astro-paper.pages.dev/", data["url"])
	assert.Equal(t, "https://astro-paper.pages.dev/astropaper-og.jpg", data["image"])
	author, ok := data["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Miloshinjo", author["name"])
}

func TestEnvOr(t *testing.T) {
	t.Setenv("PUBSITE_TEST_VALUE", "")
	assert.Equal(t, "fallback", EnvOr("PUBSITE_TEST_VALUE", "fallback"))
	t.Setenv("PUBSITE_TEST_VALUE", "set")
	assert.Equal(t, "set", EnvOr("PUBSITE_TEST_VALUE", "fallback"))
}
