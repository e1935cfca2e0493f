// Package gdext generates .gdextension manifest files: it enumerates
// the library matrix for every supported platform, infers icon
// associations from source text, folds in overrides and dependencies,
// and writes the serialized manifest in one atomic step.
package gdext

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/gdext-tools/gdexgen/pkg/gdext/assets"
	gdexterrors "github.com/gdext-tools/gdexgen/pkg/gdext/errors"
	"github.com/gdext-tools/gdexgen/pkg/gdext/inference"
	"github.com/gdext-tools/gdexgen/pkg/gdext/manifest"
	"github.com/gdext-tools/gdexgen/pkg/gdext/platform"
)

// Defaults from the godot-rust book layout.
const (
	DefaultManifestPath = "../godot/rust.gdextension"
	DefaultTargetDir    = "../rust/target"
	DefaultLibName      = "rust"
)

// ManifestExtension is the required extension of the output file.
const ManifestExtension = ".gdextension"

// IconCopy controls copying of the bundled icon files next to the
// project, so the paths recorded in the manifest actually resolve.
type IconCopy struct {
	// Bundled copies the single icon selected by IconPolicyBundled.
	Bundled bool
	// All copies every bundled icon.
	All bool
	// Dir is the destination directory, relative to the working
	// directory.
	Dir string
	// Force overwrites files that already exist.
	Force bool
}

// IconsOptions bundles the icon table configuration with the copy
// strategy.
type IconsOptions struct {
	Table manifest.IconsConfig
	Scan  inference.Options
	Copy  IconCopy
}

// Options are the inputs of one generation run. Environment-derived
// values (library name, source texts) must be resolved by the caller;
// the engine never reads ambient state itself.
type Options struct {
	// ManifestPath is where the .gdextension file is written, relative
	// to the working directory.
	ManifestPath string
	// TargetDir is the build-output root, relative to the base
	// directory.
	TargetDir string
	// LibName is the library name in snake_case.
	LibName string
	// WindowsABI selects the ABI for Windows targets.
	WindowsABI platform.WindowsABI
	// BaseDir selects what manifest paths are relative to.
	BaseDir manifest.BaseDir
	// Force rewrites the manifest even when it already exists.
	Force bool
	// Configuration overrides the default configuration section.
	Configuration *manifest.Configuration
	// Icons enables the icons section when set.
	Icons *IconsOptions
	// Sources are the source units scanned for base-class inference.
	Sources []inference.Source
	// Dependencies maps a platform target key to dependency paths.
	Dependencies map[string][]string
	// Logger defaults to a no-op logger.
	Logger hclog.Logger
}

// Generate runs one manifest generation. Either the complete manifest
// is written, or an error is returned and no partial file is left
// behind.
func Generate(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath = DefaultManifestPath
	}
	if err := validateManifestPath(manifestPath); err != nil {
		return err
	}

	if !opts.Force {
		if _, err := os.Stat(manifestPath); err == nil {
			log.Info("manifest already exists, skipping generation", "path", manifestPath)
			return nil
		}
	}

	libName := opts.LibName
	if libName == "" {
		libName = DefaultLibName
	}
	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = DefaultTargetDir
	}
	cfg := manifest.DefaultConfiguration()
	if opts.Configuration != nil {
		cfg = *opts.Configuration
	}

	libs := manifest.Libraries(opts.WindowsABI, libName, targetDir, opts.BaseDir)
	log.Debug("library matrix resolved", "entries", len(libs), "lib_name", libName)

	var icons map[string]string
	if opts.Icons != nil {
		var baseClasses map[string][]string
		if opts.Icons.Table.Policy != manifest.IconPolicyNone {
			baseClasses = inference.NewScanner(opts.Icons.Scan).Scan(opts.Sources)
			log.Debug("base classes inferred", "bases", len(baseClasses), "sources", len(opts.Sources))
		}
		icons = manifest.Icons(opts.Icons.Table, baseClasses)

		if err := copyIcons(opts.Icons); err != nil {
			return err
		}
	}

	deps := manifest.DependenciesForKeys(opts.BaseDir, opts.Dependencies)

	m, err := manifest.Assemble(cfg, libs, icons, deps)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return err
	}

	if err := writeAtomic(manifestPath, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", gdexterrors.ErrManifestWrite, err)
	}
	log.Info("manifest written", "path", manifestPath, "libraries", len(libs), "icons", len(icons))
	return nil
}

// validateManifestPath requires the output path to name a .gdextension
// file, either via its extension or as a bare ".gdextension" name.
func validateManifestPath(p string) error {
	if filepath.Ext(p) == ManifestExtension {
		return nil
	}
	return fmt.Errorf("%w: %q", gdexterrors.ErrManifestPath, p)
}

func copyIcons(opts *IconsOptions) error {
	var names []string
	switch {
	case opts.Copy.All:
		names = assets.Names()
	case opts.Copy.Bundled && opts.Table.Policy == manifest.IconPolicyBundled:
		names = []string{opts.Table.Bundled.FileName()}
	default:
		return nil
	}
	return assets.Copy(opts.Copy.Dir, names, opts.Copy.Force)
}

// writeAtomic creates the manifest in a temp file next to the
// destination and renames it into place, so a failed run leaves no
// partial manifest.
func writeAtomic(dst string, data []byte) error {
	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, "."+strings.TrimPrefix(filepath.Base(dst), ".")+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	// CreateTemp opens at 0600; the manifest is a plain project file.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
