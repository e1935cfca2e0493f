package platform

import "testing"

func TestArchitectureNames(t *testing.T) {
	tests := []struct {
		arch      Architecture
		toolchain string
		platform  string
	}{
		{ArchGeneric, "", ""},
		{ArchX86_32, "i686", "x86_32"},
		{ArchX86_64, "x86_64", "x86_64"},
		{ArchArmv7, "armv7", "arm_32"},
		{ArchArm64, "aarch64", "arm_64"},
		{ArchRv64, "riscv64gc", "rv_64"},
		{ArchWasm32, "wasm32", "wasm32"},
	}

	for _, tt := range tests {
		if got := tt.arch.ToolchainName(); got != tt.toolchain {
			t.Errorf("ToolchainName(%v) = %q, want %q", tt.arch, got, tt.toolchain)
		}
		if got := tt.arch.PlatformName(); got != tt.platform {
			t.Errorf("PlatformName(%v) = %q, want %q", tt.arch, got, tt.platform)
		}
	}
}

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode      Mode
		toolchain string
		platform  string
	}{
		{ModeDebug, "debug", "debug"},
		{ModeRelease, "release", "release"},
		{ModeEditor, "debug", "editor"},
	}

	for _, tt := range tests {
		if got := tt.mode.ToolchainName(); got != tt.toolchain {
			t.Errorf("ToolchainName(%v) = %q, want %q", tt.mode, got, tt.toolchain)
		}
		if got := tt.mode.PlatformName(); got != tt.platform {
			t.Errorf("PlatformName(%v) = %q, want %q", tt.mode, got, tt.platform)
		}
	}
}

func TestEditorBuildsAsDebug(t *testing.T) {
	if ModeEditor.ToolchainName() != ModeDebug.ToolchainName() {
		t.Error("editor mode must compile as a debug build")
	}
	if ModeEditor.PlatformName() == ModeDebug.PlatformName() {
		t.Error("editor mode must keep its own platform name")
	}
}

func TestSystemArchitecturesInvariants(t *testing.T) {
	for _, sys := range Systems(ABIMSVC) {
		archs := sys.Architectures()
		if len(archs) == 0 {
			t.Fatalf("%s: empty architecture list", sys.Name())
		}
		if archs[0] != ArchGeneric {
			t.Errorf("%s: architecture list must start with ArchGeneric", sys.Name())
		}
	}
}

func TestSystemLibraryFileName(t *testing.T) {
	tests := []struct {
		sys  System
		want string
	}{
		{Android, "demo.so"},
		{IOS, "libdemo.ios.framework"},
		{Linux, "libdemo.so"},
		{MacOS, "libdemo.dylib"},
		{Web, "demo.wasm"},
		{Windows(ABIMSVC), "demo.dll"},
	}

	for _, tt := range tests {
		if got := tt.sys.LibraryFileName("demo"); got != tt.want {
			t.Errorf("%s: LibraryFileName = %q, want %q", tt.sys.Name(), got, tt.want)
		}
	}
}

func TestSystemByName(t *testing.T) {
	for _, sys := range Systems(ABIMinGW) {
		got, ok := SystemByName(sys.Name(), ABIMinGW)
		if !ok {
			t.Fatalf("SystemByName(%q) not found", sys.Name())
		}
		if got != sys {
			t.Errorf("SystemByName(%q) = %v, want %v", sys.Name(), got, sys)
		}
	}
	if _, ok := SystemByName("plan9", ABIMSVC); ok {
		t.Error("SystemByName accepted an unknown system")
	}
}

func TestWindowsABIName(t *testing.T) {
	tests := []struct {
		abi  WindowsABI
		want string
	}{
		{ABIMSVC, "msvc"},
		{ABIMinGW, "gnu"},
		{ABILLVM, "gnullvm"},
	}
	for _, tt := range tests {
		if got := tt.abi.ToolchainName(); got != tt.want {
			t.Errorf("ToolchainName(%v) = %q, want %q", tt.abi, got, tt.want)
		}
	}
}
