package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gdext-tools/gdexgen/pkg/gdext"
	"github.com/gdext-tools/gdexgen/pkg/gdext/manifest"
	"github.com/gdext-tools/gdexgen/pkg/gdext/platform"
)

// fileOptions is the optional TOML options file (--config). Flags win
// over file values.
type fileOptions struct {
	Manifest     string              `toml:"manifest"`
	TargetDir    string              `toml:"target_dir"`
	LibName      string              `toml:"lib_name"`
	WindowsABI   string              `toml:"windows_abi"`
	BaseDir      string              `toml:"base_dir"`
	SourceGlobs  []string            `toml:"source_globs"`
	Config       *configSection      `toml:"configuration"`
	Icons        *iconsSection       `toml:"icons"`
	Dependencies map[string][]string `toml:"dependencies"`
}

type configSection struct {
	EntrySymbol          string  `toml:"entry_symbol"`
	CompatibilityMinimum float64 `toml:"compatibility_minimum"`
	CompatibilityMaximum float64 `toml:"compatibility_maximum"`
	Reloadable           bool    `toml:"reloadable"`
	AndroidAarPlugin     bool    `toml:"android_aar_plugin"`
}

type iconsSection struct {
	Default         string            `toml:"default"`
	CustomPath      string            `toml:"custom_path"`
	BundledDir      string            `toml:"bundled_dir"`
	BaseDirectory   string            `toml:"base_directory"`
	EditorDirectory string            `toml:"editor_directory"`
	CustomDirectory string            `toml:"custom_directory"`
	Custom          map[string]string `toml:"custom"`
	CopyBundled     bool              `toml:"copy_bundled"`
	CopyAll         bool              `toml:"copy_all"`
	CopyDir         string            `toml:"copy_dir"`
	ForceCopy       bool              `toml:"force_copy"`
}

func loadFileOptions(path string) (*fileOptions, error) {
	if path == "" {
		return &fileOptions{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}
	var opts fileOptions
	if err := toml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	return &opts, nil
}

func parseWindowsABI(name string) (platform.WindowsABI, error) {
	switch name {
	case "", "msvc":
		return platform.ABIMSVC, nil
	case "mingw", "gnu":
		return platform.ABIMinGW, nil
	case "llvm", "gnullvm":
		return platform.ABILLVM, nil
	default:
		return 0, fmt.Errorf("unknown windows ABI %q (msvc, mingw or llvm)", name)
	}
}

func parseBaseDir(name string) (manifest.BaseDir, error) {
	switch name {
	case "", "project":
		return manifest.ProjectDir, nil
	case "manifest":
		return manifest.ManifestDir, nil
	default:
		return 0, fmt.Errorf("unknown base dir %q (project or manifest)", name)
	}
}

// iconsOptions turns the icons section into engine options. The default
// policy names mirror the manifest package's policies; the node_rust_*
// values pick a bundled icon.
func (s *iconsSection) iconsOptions(libName string) (*gdext.IconsOptions, error) {
	if s == nil {
		return nil, nil
	}

	table := manifest.IconsConfig{
		CustomPath: s.CustomPath,
		BundledDir: s.BundledDir,
		Overrides:  s.Custom,
		Dirs:       manifest.DefaultIconDirs(libName),
	}
	if s.BaseDirectory != "" {
		table.Dirs.Base = s.BaseDirectory
	}
	if s.EditorDirectory != "" {
		table.Dirs.Editor = s.EditorDirectory
	}
	if s.CustomDirectory != "" {
		table.Dirs.Custom = s.CustomDirectory
	}

	switch s.Default {
	case "", "none":
		table.Policy = manifest.IconPolicyNone
	case "base_class":
		table.Policy = manifest.IconPolicyBaseClass
	case "custom":
		table.Policy = manifest.IconPolicyCustomDefault
	case "node_rust_small":
		table.Policy, table.Bundled = manifest.IconPolicyBundled, manifest.NodeIconSmall
	case "node_rust_large":
		table.Policy, table.Bundled = manifest.IconPolicyBundled, manifest.NodeIconLarge
	case "node_rust_ferris":
		table.Policy, table.Bundled = manifest.IconPolicyBundled, manifest.NodeIconFerris
	default:
		return nil, fmt.Errorf("unknown default icon %q", s.Default)
	}

	return &gdext.IconsOptions{
		Table: table,
		Copy: gdext.IconCopy{
			Bundled: s.CopyBundled,
			All:     s.CopyAll,
			Dir:     s.CopyDir,
			Force:   s.ForceCopy,
		},
	}, nil
}

func (s *configSection) configuration() *manifest.Configuration {
	if s == nil {
		return nil
	}
	cfg := manifest.Configuration{
		EntrySymbol:          s.EntrySymbol,
		CompatibilityMinimum: s.CompatibilityMinimum,
		CompatibilityMaximum: s.CompatibilityMaximum,
		Reloadable:           s.Reloadable,
		AndroidAarPlugin:     s.AndroidAarPlugin,
	}
	if cfg.EntrySymbol == "" {
		cfg.EntrySymbol = manifest.DefaultEntrySymbol
	}
	return &cfg
}
