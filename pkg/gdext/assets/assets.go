// Package assets bundles the default node icons shipped with the
// generator.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	gdexterrors "github.com/gdext-tools/gdexgen/pkg/gdext/errors"
)

//go:embed NodeRustSmall.svg NodeRustLarge.svg NodeRustFerris.svg
var icons embed.FS

// Names returns the file names of all bundled icons.
func Names() []string {
	return []string{"NodeRustSmall.svg", "NodeRustLarge.svg", "NodeRustFerris.svg"}
}

// Icon returns the contents of a bundled icon by file name.
func Icon(name string) ([]byte, error) {
	return icons.ReadFile(name)
}

// Copy writes the named bundled icons into dir. Existing files are left
// alone unless force is set.
func Copy(dir string, names []string, force bool) error {
	for _, name := range names {
		data, err := Icon(name)
		if err != nil {
			return fmt.Errorf("%w: %v", gdexterrors.ErrIconCopy, err)
		}
		dst := filepath.Join(dir, name)
		if !force {
			if _, err := os.Stat(dst); err == nil {
				continue
			}
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("%w: %v", gdexterrors.ErrIconCopy, err)
		}
	}
	return nil
}
