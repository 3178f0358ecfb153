// Package pubsite defines the typed site configuration of a static blog:
// identity metadata, locale, logo options, pagination and social links.
//
// Configurations are compiled-in profiles validated at program start, or
// YAML profiles loaded with LoadFile. Every accessor returns a copy, so a
// Config is safe to share between goroutines.
package pubsite

import "os"

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Select returns the configuration a program should run with: the YAML
// profile at path when path is set, otherwise the compiled-in profile name.
func Select(path, name string) (Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if name == "" {
		name = DefaultProfile
	}
	return Profile(name)
}
