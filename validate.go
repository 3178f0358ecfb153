package pubsite

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError describes one invalid configuration field.
type FieldError struct {
	Field   string // Dotted path, e.g. "socials[0].href"
	Value   any    // The rejected value
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidationError bundles every FieldError found in a Config.
type ValidationError struct {
	errors []FieldError
}

// Errors returns the individual field failures.
func (e ValidationError) Errors() []FieldError {
	return e.errors
}

func (e ValidationError) Error() string {
	msgs := make([]string, len(e.errors))
	for i, fe := range e.errors {
		msgs[i] = fe.Error()
	}
	return "pubsite: malformed configuration: " + strings.Join(msgs, "; ")
}

type validator struct {
	errors []FieldError
}

func (v *validator) add(field, message string, value any) {
	v.errors = append(v.errors, FieldError{Field: field, Value: value, Message: message})
}

func (v *validator) err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return ValidationError{errors: v.errors}
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "must not be empty", value)
	}
}

func (v *validator) positive(field string, value int) {
	if value <= 0 {
		v.add(field, "must be greater than zero", value)
	}
}

// absoluteURL accepts http(s) URLs with a host, plus any extra schemes given.
func (v *validator) absoluteURL(field, value string, extraSchemes ...string) {
	if value == "" {
		v.add(field, "URL must not be empty", value)
		return
	}
	u, err := url.Parse(value)
	if err != nil {
		v.add(field, fmt.Sprintf("invalid URL: %v", err), value)
		return
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			v.add(field, "URL must have a host", value)
		}
		return
	}
	for _, s := range extraSchemes {
		if u.Scheme == s && u.Opaque != "" {
			return
		}
	}
	v.add(field, "URL must be absolute (http or https)", value)
}

// Validate checks c against the configuration invariants and reports every
// violation at once.
func (c Config) Validate() error {
	v := &validator{}

	v.absoluteURL("site.website", c.Site.Website)
	v.required("site.author", c.Site.Author)
	v.required("site.desc", c.Site.Desc)
	v.required("site.title", c.Site.Title)
	v.required("site.ogImage", c.Site.OGImage)
	v.positive("site.postPerPage", c.Site.PostPerPage)

	for i, s := range c.Locale {
		if _, err := parseTag(s); err != nil {
			v.add(fmt.Sprintf("locale[%d]", i), "not a well-formed language tag", s)
		}
	}

	v.positive("logo.width", c.Logo.Width)
	v.positive("logo.height", c.Logo.Height)

	seen := make(map[string]int, len(c.Socials))
	for i, s := range c.Socials {
		field := fmt.Sprintf("socials[%d]", i)
		switch {
		case s.Name == "":
			v.add(field+".name", "must not be empty", s.Name)
		case !IsKnownPlatform(s.Name):
			v.add(field+".name", "unknown platform", s.Name)
		}
		if j, dup := seen[s.Name]; dup && s.Name != "" {
			v.add(field+".name", fmt.Sprintf("duplicates socials[%d]", j), s.Name)
		} else {
			seen[s.Name] = i
		}
		if Platform(s.Name) == Mail {
			v.absoluteURL(field+".href", s.Href, "mailto")
		} else {
			v.absoluteURL(field+".href", s.Href)
		}
		if want := ComputeLinkTitle(c.Site.Title, s.Name); s.LinkTitle != want {
			v.add(field+".linkTitle", fmt.Sprintf("must be %q", want), s.LinkTitle)
		}
	}

	return v.err()
}
