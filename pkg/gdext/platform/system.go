package platform

// WindowsABI is the environment and ABI used when building for Windows.
type WindowsABI int

const (
	// ABIMSVC is the Microsoft Visual C++ compiler, the toolchain default.
	ABIMSVC WindowsABI = iota
	// ABIMinGW is the MinGW compiler (MSYS2 port of GCC).
	ABIMinGW
	// ABILLVM is like MinGW but with UCRT as the runtime and LLVM tools
	// instead of GCC/Binutils.
	ABILLVM
)

// ToolchainName returns the ABI component of a Windows toolchain triple.
func (abi WindowsABI) ToolchainName() string {
	switch abi {
	case ABIMinGW:
		return "gnu"
	case ABILLVM:
		return "gnullvm"
	default:
		return "msvc"
	}
}

type systemKind int

const (
	kindAndroid systemKind = iota
	kindIOS
	kindLinux
	kindMacOS
	kindWeb
	kindWindows
)

// System is a target operating system. Windows additionally carries the
// ABI used to build for it; every other system is one of the package
// variables below.
type System struct {
	kind systemKind
	abi  WindowsABI
}

var (
	// Android system.
	Android = System{kind: kindAndroid}
	// IOS system.
	IOS = System{kind: kindIOS}
	// Linux system.
	Linux = System{kind: kindLinux}
	// MacOS system.
	MacOS = System{kind: kindMacOS}
	// Web browser.
	Web = System{kind: kindWeb}
)

// Windows returns the Windows system built with the given ABI.
func Windows(abi WindowsABI) System {
	return System{kind: kindWindows, abi: abi}
}

// Systems returns every supported system, with Windows parameterized by
// the given ABI.
func Systems(abi WindowsABI) []System {
	return []System{Android, IOS, Linux, MacOS, Web, Windows(abi)}
}

// IsWindows reports whether the system is Windows, and with which ABI.
func (s System) IsWindows() (WindowsABI, bool) {
	return s.abi, s.kind == kindWindows
}

// Name returns the lowercase system name used in platform targets.
func (s System) Name() string {
	switch s.kind {
	case kindAndroid:
		return "android"
	case kindIOS:
		return "ios"
	case kindLinux:
		return "linux"
	case kindMacOS:
		return "macos"
	case kindWeb:
		return "web"
	default:
		return "windows"
	}
}

// Architectures returns the ordered list of architectures the system
// supports. The list always starts with ArchGeneric; order only matters
// for deterministic output.
func (s System) Architectures() []Architecture {
	switch s.kind {
	case kindAndroid:
		return []Architecture{ArchGeneric, ArchArmv7, ArchArm64, ArchX86_32, ArchX86_64}
	case kindIOS:
		return []Architecture{ArchGeneric, ArchArm64}
	case kindLinux:
		return []Architecture{ArchGeneric, ArchArm64, ArchRv64, ArchX86_64}
	case kindMacOS:
		return []Architecture{ArchGeneric, ArchArm64, ArchX86_64}
	case kindWeb:
		return []Architecture{ArchGeneric, ArchWasm32}
	default:
		return []Architecture{ArchGeneric, ArchArm64, ArchX86_32, ArchX86_64}
	}
}

// LibraryFileName returns the name of the compiled library file for the
// system, given the library name in snake_case.
func (s System) LibraryFileName(libName string) string {
	var prefix, ext string
	switch s.kind {
	case kindIOS:
		prefix, ext = "lib", "ios.framework"
	case kindLinux:
		prefix, ext = "lib", "so"
	case kindMacOS:
		prefix, ext = "lib", "dylib"
	case kindAndroid:
		prefix, ext = "", "so"
	case kindWeb:
		prefix, ext = "", "wasm"
	default:
		prefix, ext = "", "dll"
	}
	return prefix + libName + "." + ext
}

// SystemByName looks a system up by its lowercase name. Windows is
// returned with the given ABI.
func SystemByName(name string, abi WindowsABI) (System, bool) {
	switch name {
	case "android":
		return Android, true
	case "ios":
		return IOS, true
	case "linux":
		return Linux, true
	case "macos":
		return MacOS, true
	case "web":
		return Web, true
	case "windows":
		return Windows(abi), true
	default:
		return System{}, false
	}
}
