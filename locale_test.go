package pubsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocaleIsDefault(t *testing.T) {
	assert.True(t, Locale(nil).IsDefault())
	assert.True(t, Locale{}.IsDefault())
	assert.False(t, Locale{"en-EN"}.IsDefault())
}

func TestLocaleTags(t *testing.T) {
	tags, err := Locale{"en-EN", "de-DE"}.Tags()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	base, _ := tags[1].Base()
	assert.Equal(t, "de", base.String())

	_, err = Locale{"en", "!!"}.Tags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locale[1]")
}

func TestLocaleResolveEmptyUsesEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	t.Setenv("LANG", "")

	assert.Equal(t, []language.Tag{language.MustParse("fr-FR")}, Locale{}.Resolve())
}

func TestLocaleResolveNonEmpty(t *testing.T) {
	t.Setenv("LC_ALL", "fr_FR.UTF-8")

	tags := Locale{"de-DE"}.Resolve()
	assert.Equal(t, []language.Tag{language.MustParse("de-DE")}, tags)
}

func TestEnvironmentLocaleFallback(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "C")
	assert.Equal(t, language.English, EnvironmentLocale())

	t.Setenv("LANG", "pt_BR")
	assert.Equal(t, language.MustParse("pt-BR"), EnvironmentLocale())
}

func TestLocaleTagsDropUnregisteredSubtags(t *testing.T) {
	l := Locale{"en-EN"}

	tags, err := l.Tags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "en", tags[0].String())
	assert.Equal(t, tags, l.Resolve())
	assert.Equal(t, "en-EN", l[0], "the configured spelling is kept")
}
