package pubsite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for profile files that are not YAML.
	ErrUnsupportedFormat = errors.New("unsupported profile format")

	// ErrUnknownField classifies strict parse failures caused by unknown keys.
	ErrUnknownField = errors.New("unknown profile field")
)

// fileConfig is the on-disk shape of a profile. Pointer fields tell an
// absent key apart from a zero value.
type fileConfig struct {
	Site    *fileSite     `yaml:"site"`
	Locale  *[]string     `yaml:"locale"`
	Logo    *fileLogo     `yaml:"logo"`
	Socials *[]fileSocial `yaml:"socials"`
}

type fileSite struct {
	Website          *string `yaml:"website"`
	Author           *string `yaml:"author"`
	Desc             *string `yaml:"desc"`
	Title            *string `yaml:"title"`
	OGImage          *string `yaml:"ogImage"`
	LightAndDarkMode *bool   `yaml:"lightAndDarkMode"`
	PostPerPage      *int    `yaml:"postPerPage"`
}

type fileLogo struct {
	Enable *bool `yaml:"enable"`
	SVG    *bool `yaml:"svg"`
	Width  *int  `yaml:"width"`
	Height *int  `yaml:"height"`
}

type fileSocial struct {
	Name      *string `yaml:"name"`
	Href      *string `yaml:"href"`
	LinkTitle string  `yaml:"linkTitle"` // derived when empty
	Active    *bool   `yaml:"active"`
}

func present[T any](v *validator, field string, p *T) T {
	var zero T
	if p == nil {
		v.add(field, "must be set", nil)
		return zero
	}
	return *p
}

// config converts fc, recording every absent key on v.
func (fc fileConfig) config(v *validator) Config {
	var cfg Config

	if fc.Site == nil {
		v.add("site", "must be set", nil)
	} else {
		s := fc.Site
		cfg.Site = SiteConfig{
			Website:          present(v, "site.website", s.Website),
			Author:           present(v, "site.author", s.Author),
			Desc:             present(v, "site.desc", s.Desc),
			Title:            present(v, "site.title", s.Title),
			OGImage:          present(v, "site.ogImage", s.OGImage),
			LightAndDarkMode: present(v, "site.lightAndDarkMode", s.LightAndDarkMode),
			PostPerPage:      present(v, "site.postPerPage", s.PostPerPage),
		}
	}

	// An empty list is a valid setting; only an absent key is rejected.
	cfg.Locale = Locale(present(v, "locale", fc.Locale))

	if fc.Logo == nil {
		v.add("logo", "must be set", nil)
	} else {
		l := fc.Logo
		cfg.Logo = LogoImage{
			Enable: present(v, "logo.enable", l.Enable),
			SVG:    present(v, "logo.svg", l.SVG),
			Width:  present(v, "logo.width", l.Width),
			Height: present(v, "logo.height", l.Height),
		}
	}

	for i, s := range present(v, "socials", fc.Socials) {
		field := fmt.Sprintf("socials[%d]", i)
		link := SocialLink{
			Name:      present(v, field+".name", s.Name),
			Href:      present(v, field+".href", s.Href),
			LinkTitle: s.LinkTitle,
			Active:    present(v, field+".active", s.Active),
		}
		if link.LinkTitle == "" {
			link.LinkTitle = ComputeLinkTitle(cfg.Site.Title, link.Name)
		}
		cfg.Socials = append(cfg.Socials, link)
	}

	return cfg
}

// LoadFile reads and validates a YAML profile.
func LoadFile(path string) (Config, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return Config{}, fmt.Errorf("pubsite: %w: %s", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pubsite: read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile strictly. Every key must be present except
// linkTitle, which is derived from the site title when omitted. The result
// is then validated.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, errors.New("pubsite: empty profile")
		}
		if strings.Contains(err.Error(), "not found in type") {
			return Config{}, fmt.Errorf("pubsite: %w: %w", ErrUnknownField, err)
		}
		return Config{}, fmt.Errorf("pubsite: parse profile: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Config{}, errors.New("pubsite: profile contains multiple documents or trailing content")
	}

	v := &validator{}
	cfg := fc.config(v)
	if err := v.err(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
