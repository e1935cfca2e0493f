package pkg

import (
	"github.com/gdext-tools/gdexgen/pkg/gdext"
)

// GenerateManifest runs one .gdextension generation with full options.
func GenerateManifest(opts gdext.Options) error {
	return gdext.Generate(opts)
}

// GenerateDefaultManifest generates a manifest with the godot-rust book
// defaults for the given library name.
func GenerateDefaultManifest(libName string) error {
	return gdext.Generate(gdext.Options{LibName: libName})
}
