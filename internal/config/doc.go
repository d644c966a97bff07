// Package config defines the devtools configuration: built-in defaults,
// the optional .devtools YAML file with per-tool default sections, XDG
// directory helpers, and validation with sentinel errors.
package config
