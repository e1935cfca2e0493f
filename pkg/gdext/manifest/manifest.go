// Package manifest assembles the .gdextension manifest: the library
// path matrix, the icon table, the dependency table and the
// configuration section, folded into one document ready for TOML
// serialization.
package manifest

import (
	"fmt"

	gdexterrors "github.com/gdext-tools/gdexgen/pkg/gdext/errors"
)

// DefaultEntrySymbol is the entry function name godot-rust extensions
// export by default.
const DefaultEntrySymbol = "gdext_rust_init"

// LibraryEntrySymbol returns the conventional entry symbol derived from
// a library name in snake_case: "lib{name}_init".
func LibraryEntrySymbol(libName string) string {
	return "lib" + libName + "_init"
}

// BaseDir selects what manifest paths are relative to.
type BaseDir int

const (
	// ProjectDir makes paths relative to the Godot project folder; they
	// are prefixed with "res://".
	ProjectDir BaseDir = iota
	// ManifestDir makes paths relative to the folder holding the
	// .gdextension file itself; no prefix.
	ManifestDir
)

// Prefix returns the path prefix for the base directory.
func (b BaseDir) Prefix() string {
	if b == ProjectDir {
		return "res://"
	}
	return ""
}

// Configuration is the configuration section of the manifest. Zero
// optional fields are omitted from the serialized document.
type Configuration struct {
	// EntrySymbol is the name of the extension's init function.
	EntrySymbol string `toml:"entry_symbol"`
	// CompatibilityMinimum is the lowest Godot version that may load the
	// extension, as major.minor.
	CompatibilityMinimum float64 `toml:"compatibility_minimum,omitempty"`
	// CompatibilityMaximum is the highest Godot version that may load
	// the extension, as major.minor.
	CompatibilityMaximum float64 `toml:"compatibility_maximum,omitempty"`
	// Reloadable allows reloading the extension on recompilation
	// (Godot 4.2+).
	Reloadable bool `toml:"reloadable,omitempty"`
	// AndroidAarPlugin marks the extension libraries as exported by a
	// v2 Android plugin's AAR binaries.
	AndroidAarPlugin bool `toml:"android_aar_plugin,omitempty"`
}

// DefaultConfiguration returns the configuration the godot-rust book
// recommends.
func DefaultConfiguration() Configuration {
	return Configuration{
		EntrySymbol:          DefaultEntrySymbol,
		CompatibilityMinimum: 4.1,
		Reloadable:           true,
	}
}

// Manifest is the fully assembled .gdextension document. It is built
// once per generation run and never mutated after Assemble returns it.
type Manifest struct {
	Configuration Configuration     `toml:"configuration"`
	Libraries     map[string]string `toml:"libraries"`
	Icons         map[string]string `toml:"icons,omitempty"`
	Dependencies  DependencyTable   `toml:"dependencies,omitempty"`
}

// Assemble folds the configuration, library table and the optional icon
// and dependency tables into a Manifest. A run that resolved zero
// library entries is a configuration error upstream, never a silently
// empty manifest.
func Assemble(cfg Configuration, libraries map[string]string, icons map[string]string, deps DependencyTable) (*Manifest, error) {
	if len(libraries) == 0 {
		return nil, fmt.Errorf("assembling manifest: %w", gdexterrors.ErrNoLibraries)
	}
	return &Manifest{
		Configuration: cfg,
		Libraries:     libraries,
		Icons:         icons,
		Dependencies:  deps,
	}, nil
}
