package manifest

import (
	"strings"

	"github.com/gdext-tools/gdexgen/pkg/gdext/platform"
)

// DependencyTable maps a platform target key to a nested table of
// dependency path -> relocation subfolder.
type DependencyTable map[string]map[string]string

// macOS is the only system whose native dependencies must be relocated
// into the app bundle.
const macOSDependencySubfolder = "Contents/Frameworks"

// Dependencies builds the dependencies section from per-target
// dependency paths. Paths get the base-directory prefix; the relocation
// subfolder is empty for every system except macOS.
func Dependencies(baseDir BaseDir, deps map[platform.Target][]string) DependencyTable {
	if len(deps) == 0 {
		return nil
	}

	table := make(DependencyTable, len(deps))
	for target, paths := range deps {
		entry := make(map[string]string, len(paths))
		subfolder := ""
		if target.System == platform.MacOS {
			subfolder = macOSDependencySubfolder
		}
		for _, p := range paths {
			entry[baseDir.Prefix()+strings.ReplaceAll(p, `\`, "/")] = subfolder
		}
		table[target.PlatformTarget()] = entry
	}
	return table
}

// DependenciesForKeys builds the dependencies section from paths keyed
// by an already-resolved platform target string, as read from a config
// file. The system is recovered from the key's first component to apply
// the macOS relocation rule.
func DependenciesForKeys(baseDir BaseDir, deps map[string][]string) DependencyTable {
	if len(deps) == 0 {
		return nil
	}

	table := make(DependencyTable, len(deps))
	for key, paths := range deps {
		entry := make(map[string]string, len(paths))
		subfolder := ""
		name, _, _ := strings.Cut(key, ".")
		if sys, ok := platform.SystemByName(name, platform.ABIMSVC); ok && sys == platform.MacOS {
			subfolder = macOSDependencySubfolder
		}
		for _, p := range paths {
			entry[baseDir.Prefix()+strings.ReplaceAll(p, `\`, "/")] = subfolder
		}
		table[key] = entry
	}
	return table
}
