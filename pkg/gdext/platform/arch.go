// Package platform enumerates the systems, CPU architectures and build
// modes a Godot native extension can be compiled for, and resolves a
// (system, mode, architecture) combination into the toolchain target
// triple and the Godot platform target the editor uses to pick a
// library at load time.
package platform

// Architecture is a CPU architecture an extension library can be built for.
type Architecture int

const (
	// ArchGeneric marks a build with no architecture-specific artifact,
	// e.g. a macOS universal library. Its toolchain name is empty.
	ArchGeneric Architecture = iota
	// ArchX86_32 is 32-bit x86 (i686).
	ArchX86_32
	// ArchX86_64 is 64-bit x86.
	ArchX86_64
	// ArchArmv7 is 32-bit ARMv7.
	ArchArmv7
	// ArchArm64 is AArch64.
	ArchArm64
	// ArchRv64 is 64-bit RISC-V.
	ArchRv64
	// ArchWasm32 is 32-bit WebAssembly.
	ArchWasm32
)

// ToolchainName returns the architecture component of a toolchain target
// triple. Empty for ArchGeneric.
func (a Architecture) ToolchainName() string {
	switch a {
	case ArchX86_32:
		return "i686"
	case ArchX86_64:
		return "x86_64"
	case ArchArmv7:
		return "armv7"
	case ArchArm64:
		return "aarch64"
	case ArchRv64:
		return "riscv64gc"
	case ArchWasm32:
		return "wasm32"
	default:
		return ""
	}
}

// PlatformName returns the architecture component of a Godot platform
// target. Empty for ArchGeneric.
func (a Architecture) PlatformName() string {
	switch a {
	case ArchX86_32:
		return "x86_32"
	case ArchX86_64:
		return "x86_64"
	case ArchArmv7:
		return "arm_32"
	case ArchArm64:
		return "arm_64"
	case ArchRv64:
		return "rv_64"
	case ArchWasm32:
		return "wasm32"
	default:
		return ""
	}
}
