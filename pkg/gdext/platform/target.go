package platform

import "strings"

// Target is one (system, mode, architecture) combination. Targets are
// built only to be resolved into strings and are never persisted.
type Target struct {
	System       System
	Mode         Mode
	Architecture Architecture
}

// ToolchainTriple returns the toolchain target triple for the target,
// or the empty string when the architecture is ArchGeneric (no
// architecture-specific build is requested).
//
// The catalogs guarantee every system/architecture combination handed
// to this function is valid, so it is total.
func (t Target) ToolchainTriple() string {
	if t.Architecture == ArchGeneric {
		return ""
	}

	arch := t.Architecture.ToolchainName()
	sys := t.System.Name()

	var b strings.Builder
	switch t.System.kind {
	case kindAndroid:
		b.WriteString(arch + "-linux-" + sys)
		if t.Architecture == ArchArmv7 {
			b.WriteString("eabi")
		}
	case kindIOS:
		b.WriteString(arch + "-apple-" + sys)
	case kindLinux:
		b.WriteString(arch + "-unknown-" + sys + "-gnu")
	case kindMacOS:
		b.WriteString(arch + "-apple-darwin")
	case kindWeb:
		b.WriteString(arch + "-unknown-emscripten")
	default:
		b.WriteString(arch + "-pc-" + sys + "-" + t.System.abi.ToolchainName())
	}
	return b.String()
}

// PlatformTarget returns the Godot platform target the runtime uses to
// select a library at load time: "system.mode" for generic builds,
// "system.mode.arch" otherwise.
func (t Target) PlatformTarget() string {
	if t.Architecture == ArchGeneric {
		return t.System.Name() + "." + t.Mode.PlatformName()
	}
	return t.System.Name() + "." + t.Mode.PlatformName() + "." + t.Architecture.PlatformName()
}
