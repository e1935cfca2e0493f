// Package project resolves the ambient inputs of a generation run: the
// library name taken from the environment, and the source files scanned
// for icon inference. The core engine only ever sees the resolved
// values.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	gdexterrors "github.com/gdext-tools/gdexgen/pkg/gdext/errors"
	"github.com/gdext-tools/gdexgen/pkg/gdext/inference"
)

// LibNameEnv is the environment variable the library name is read from.
const LibNameEnv = "GDEXGEN_LIB_NAME"

// DefaultSourceGlobs matches the sources of a godot-rust crate laid out
// the conventional way.
var DefaultSourceGlobs = []string{"src/**/*.rs"}

// LibName returns the library name from the environment, hyphens turned
// into underscores, or fallback when unset.
func LibName(fallback string) string {
	if v := os.Getenv(LibNameEnv); v != "" {
		return strings.ReplaceAll(v, "-", "_")
	}
	return fallback
}

// DiscoverSources reads every file under root matching the given glob
// patterns into source units for inference. Patterns support ** via
// doublestar. Results are sorted by path so scans are deterministic.
func DiscoverSources(root string, globs []string) ([]inference.Source, error) {
	if len(globs) == 0 {
		globs = DefaultSourceGlobs
	}

	var paths []string
	for _, g := range globs {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, g))
		if err != nil {
			return nil, fmt.Errorf("source glob %q: %w", g, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	sources := make([]inference.Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", gdexterrors.ErrSourceRead, err)
		}
		sources = append(sources, inference.Source{Name: p, Text: string(data)})
	}
	return sources, nil
}
