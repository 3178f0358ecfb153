package pubsite

import "slices"

// Config is the complete configuration of one deployment.
type Config struct {
	Site    SiteConfig   `json:"site" yaml:"site"`
	Locale  Locale       `json:"locale" yaml:"locale"`
	Logo    LogoImage    `json:"logo" yaml:"logo"`
	Socials []SocialLink `json:"socials" yaml:"socials"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Locale = slices.Clone(c.Locale)
	c.Socials = slices.Clone(c.Socials)
	return c
}

// ActiveSocials returns the active social links of c in display order.
func (c Config) ActiveSocials() []SocialLink {
	return ActiveSocials(c.Socials)
}
