package pubsite

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale is an ordered list of language tags used for date and number
// formatting. An empty list defers to the environment default.
type Locale []string

// IsDefault reports whether l defers to the environment locale.
func (l Locale) IsDefault() bool {
	return len(l) == 0
}

// Tags parses every entry of l. Tags that are well-formed but carry
// unregistered subtags are accepted with those subtags dropped: "en-EN"
// yields "en". Use the raw strings of l where the configured spelling
// matters.
func (l Locale) Tags() ([]language.Tag, error) {
	tags := make([]language.Tag, 0, len(l))
	for i, s := range l {
		tag, err := parseTag(s)
		if err != nil {
			return nil, fmt.Errorf("locale[%d] %q: %w", i, s, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Resolve returns the tags to format with, as produced by Tags. An empty or
// unparsable list resolves to the environment default.
func (l Locale) Resolve() []language.Tag {
	if !l.IsDefault() {
		if tags, err := l.Tags(); err == nil {
			return tags
		}
	}
	return []language.Tag{EnvironmentLocale()}
}

// EnvironmentLocale derives a tag from LC_ALL or LANG, falling back to English.
func EnvironmentLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(key)
		// "en_US.UTF-8" -> "en-US"
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		v = strings.ReplaceAll(v, "_", "-")
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if tag, err := parseTag(v); err == nil {
			return tag
		}
	}
	return language.English
}

func parseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		var ve language.ValueError
		if errors.As(err, &ve) {
			return tag, nil
		}
		return language.Und, err
	}
	return tag, nil
}
