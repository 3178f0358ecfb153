package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/eringen/pubsite"
)

// Options is the root of the CLI. Global flags select the configuration
// every command works on.
type Options struct {
	File    string `short:"f" long:"file" description:"YAML profile path (overrides --profile)"`
	Profile string `short:"p" long:"profile" description:"Compiled-in profile name (default $PUBSITE_PROFILE or codeshorts)"`

	List     ListCmd     `command:"list" description:"List compiled-in profiles"`
	Show     ShowCmd     `command:"show" description:"Print the selected configuration as JSON"`
	Validate ValidateCmd `command:"validate" description:"Validate the selected configuration"`
	Socials  SocialsCmd  `command:"socials" description:"Print the active social links in display order"`
	Version  VersionCmd  `command:"version" description:"Print the pubsite version"`

	out    io.Writer
	logger zerolog.Logger
}

func newOptions(out io.Writer, logger zerolog.Logger) *Options {
	o := &Options{out: out, logger: logger}
	o.List.opts = o
	o.Show.opts = o
	o.Validate.opts = o
	o.Socials.opts = o
	o.Version.opts = o
	return o
}

func (o *Options) config() (pubsite.Config, error) {
	name := o.Profile
	if name == "" {
		name = pubsite.EnvOr("PUBSITE_PROFILE", pubsite.DefaultProfile)
	}
	cfg, err := pubsite.Select(o.File, name)
	if err != nil {
		return pubsite.Config{}, err
	}
	o.logger.Debug().
		Str("file", o.File).
		Str("profile", name).
		Str("title", cfg.Site.Title).
		Msg("configuration selected")
	return cfg, nil
}

// ListCmd prints profile names.
type ListCmd struct{ opts *Options }

func (c *ListCmd) Execute(_ []string) error {
	for _, name := range pubsite.ProfileNames() {
		if _, err := fmt.Fprintln(c.opts.out, name); err != nil {
			return err
		}
	}
	return nil
}

// ShowCmd dumps the configuration as indented JSON.
type ShowCmd struct{ opts *Options }

func (c *ShowCmd) Execute(_ []string) error {
	cfg, err := c.opts.config()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.opts.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(cfg)
}

// ValidateCmd reports every invalid field of the configuration.
type ValidateCmd struct{ opts *Options }

func (c *ValidateCmd) Execute(_ []string) error {
	cfg, err := c.opts.config()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.opts.logger.Info().
		Str("title", cfg.Site.Title).
		Int("socials", len(cfg.Socials)).
		Msg("configuration is valid")
	return nil
}

// SocialsCmd prints active social links, one per line.
type SocialsCmd struct{ opts *Options }

func (c *SocialsCmd) Execute(_ []string) error {
	cfg, err := c.opts.config()
	if err != nil {
		return err
	}
	for _, l := range cfg.ActiveSocials() {
		if _, err := fmt.Fprintf(c.opts.out, "%s\t%s\t%s\n", l.Name, l.Href, l.LinkTitle); err != nil {
			return err
		}
	}
	return nil
}

// VersionCmd prints the build version.
type VersionCmd struct{ opts *Options }

func (c *VersionCmd) Execute(_ []string) error {
	_, err := fmt.Fprintf(c.opts.out, "pubsite %s\n", version)
	return err
}
