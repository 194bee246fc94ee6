// Package config loads palette definitions from YAML files. The embedded
// default palette needs no file; this layer exists so deployments can ship
// their own token tables without rebuilding.
package config

// File is the YAML palette schema. Family, shade, and context keys are
// validated against the declared enums during conversion; color values are
// validated structurally here.
type File struct {
	Version string `yaml:"version" validate:"omitempty"`

	// Palette is the full base table: family -> shade -> hex.
	Palette map[string]map[string]string `yaml:"palette" validate:"required,dive,dive,hex_rgb"`

	// Contexts holds sparse overrides per theme context: context ->
	// "family.shade" -> hex.
	Contexts map[string]map[string]string `yaml:"contexts" validate:"omitempty,dive,dive,hex_rgb"`

	// Dark holds generic dark-scheme overrides: "family.shade" -> hex.
	Dark map[string]string `yaml:"dark" validate:"omitempty,dive,hex_rgb"`

	// DarkContexts holds context-specific dark overrides.
	DarkContexts map[string]map[string]string `yaml:"dark_contexts" validate:"omitempty,dive,dive,hex_rgb"`
}
