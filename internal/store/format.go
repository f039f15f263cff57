package store

import "strings"

// Format selects the on-disk serialization for the feature catalog.
type Format int

const (
	// TOML is the human-readable structured-config format (the default).
	TOML Format = iota

	// JSON is the plain data-interchange format.
	JSON
)

// Extension returns the file extension for the format, without a dot.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return "json"
	default:
		return "toml"
	}
}

// String returns the format name used in config files and flags.
func (f Format) String() string {
	return f.Extension()
}

// FormatFromName maps a name like "toml" or "json" to a Format.
func FormatFromName(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "toml":
		return TOML, true
	case "json":
		return JSON, true
	}
	return TOML, false
}
