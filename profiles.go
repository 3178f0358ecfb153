package pubsite

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// DefaultProfile is the profile returned by Load.
const DefaultProfile = "codeshorts"

// ErrUnknownProfile is returned when a profile name is not registered.
var ErrUnknownProfile = errors.New("unknown profile")

var codeShortsSite = SiteConfig{
	Website:          "https://astro-paper.pages.dev/",
	Author:           "Miloshinjo",
	Desc:             "A minimal, responsive and SEO-friendly Astro blog theme.",
	Title:            "Code Shorts",
	OGImage:          "astropaper-og.jpg",
	LightAndDarkMode: true,
	PostPerPage:      3,
}

var milosSite = SiteConfig{
	Website:          "https://astro-paper.pages.dev/",
	Author:           "Miloš Dželetović",
	Desc:             "A minimal, responsive and SEO-friendly Astro blog theme.",
	Title:            "Miloš Dželetović",
	OGImage:          "astropaper-og.jpg",
	LightAndDarkMode: true,
	PostPerPage:      3,
}

var defaultLogo = LogoImage{
	Enable: true,
	SVG:    false,
	Width:  70,
	Height: 35,
}

var profiles = map[string]Config{
	"codeshorts": {
		Site:   codeShortsSite,
		Locale: Locale{"en-EN"},
		Logo:   defaultLogo,
		Socials: []SocialLink{
			NewSocial(codeShortsSite, Github, "https://github.com/Miloshinjo/code-shorts-blog", true),
		},
	},
	"milos": {
		Site:   milosSite,
		Locale: Locale{"en-EN"},
		Logo:   defaultLogo,
		Socials: []SocialLink{
			NewSocial(milosSite, Twitter, "https://twitter.com/miloshinjo", true),
		},
	},
}

// A broken compiled-in profile must stop the program before anything
// renders with it.
func init() {
	for name, cfg := range profiles {
		if err := cfg.Validate(); err != nil {
			panic(fmt.Sprintf("pubsite: profile %q: %v", name, err))
		}
	}
}

// Load returns the default compiled-in configuration.
func Load() Config {
	return MustLoad(DefaultProfile)
}

// Profile returns a copy of the named compiled-in configuration.
func Profile(name string) (Config, error) {
	cfg, ok := profiles[name]
	if !ok {
		return Config{}, fmt.Errorf("pubsite: %w: %q", ErrUnknownProfile, name)
	}
	return cfg.Clone(), nil
}

// MustLoad is like Profile but panics if name is unknown.
func MustLoad(name string) Config {
	cfg, err := Profile(name)
	if err != nil {
		panic(err)
	}
	return cfg
}

// ProfileNames lists the compiled-in profiles in sorted order.
func ProfileNames() []string {
	return slices.Sorted(maps.Keys(profiles))
}
