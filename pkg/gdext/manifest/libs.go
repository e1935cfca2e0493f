package manifest

import (
	"path"
	"strings"

	"github.com/gdext-tools/gdexgen/pkg/gdext/platform"
)

// Libraries enumerates every (system, architecture, mode) combination
// and maps its platform target to the path of the compiled library.
//
// Generic-architecture builds live directly under the mode folder of
// targetDir; architecture-specific builds live under the toolchain
// triple folder first. Separators are normalized to forward slashes and
// every path carries the base-directory prefix.
func Libraries(abi platform.WindowsABI, libName, targetDir string, baseDir BaseDir) map[string]string {
	targetDir = strings.ReplaceAll(targetDir, `\`, "/")

	libs := make(map[string]string)
	for _, sys := range platform.Systems(abi) {
		file := sys.LibraryFileName(libName)
		for _, arch := range sys.Architectures() {
			for _, mode := range platform.Modes() {
				target := platform.Target{System: sys, Mode: mode, Architecture: arch}

				var p string
				if arch == platform.ArchGeneric {
					p = path.Join(targetDir, mode.ToolchainName(), file)
				} else {
					p = path.Join(targetDir, target.ToolchainTriple(), mode.ToolchainName(), file)
				}
				libs[target.PlatformTarget()] = baseDir.Prefix() + p
			}
		}
	}
	return libs
}
