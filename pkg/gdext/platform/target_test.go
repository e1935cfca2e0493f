package platform

import "testing"

func TestToolchainTriple(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{"generic has no triple", Target{Linux, ModeDebug, ArchGeneric}, ""},
		{"android arm64", Target{Android, ModeRelease, ArchArm64}, "aarch64-linux-android"},
		{"android armv7 gets eabi", Target{Android, ModeRelease, ArchArmv7}, "armv7-linux-androideabi"},
		{"android x86_64", Target{Android, ModeDebug, ArchX86_64}, "x86_64-linux-android"},
		{"ios arm64", Target{IOS, ModeDebug, ArchArm64}, "aarch64-apple-ios"},
		{"linux x86_64", Target{Linux, ModeDebug, ArchX86_64}, "x86_64-unknown-linux-gnu"},
		{"linux riscv", Target{Linux, ModeRelease, ArchRv64}, "riscv64gc-unknown-linux-gnu"},
		{"macos does not interpolate its name", Target{MacOS, ModeRelease, ArchArm64}, "aarch64-apple-darwin"},
		{"web wasm", Target{Web, ModeDebug, ArchWasm32}, "wasm32-unknown-emscripten"},
		{"windows msvc", Target{Windows(ABIMSVC), ModeDebug, ArchX86_64}, "x86_64-pc-windows-msvc"},
		{"windows mingw", Target{Windows(ABIMinGW), ModeDebug, ArchX86_64}, "x86_64-pc-windows-gnu"},
		{"windows llvm arm64", Target{Windows(ABILLVM), ModeRelease, ArchArm64}, "aarch64-pc-windows-gnullvm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.ToolchainTriple(); got != tt.want {
				t.Errorf("ToolchainTriple() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlatformTarget(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{"generic omits architecture", Target{MacOS, ModeRelease, ArchGeneric}, "macos.release"},
		{"macos release arm64", Target{MacOS, ModeRelease, ArchArm64}, "macos.release.arm_64"},
		{"editor keeps its own name", Target{Linux, ModeEditor, ArchX86_64}, "linux.editor.x86_64"},
		{"windows debug x86_32", Target{Windows(ABIMSVC), ModeDebug, ArchX86_32}, "windows.debug.x86_32"},
		{"android armv7", Target{Android, ModeDebug, ArchArmv7}, "android.debug.arm_32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.PlatformTarget(); got != tt.want {
				t.Errorf("PlatformTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	target := Target{Windows(ABILLVM), ModeEditor, ArchArm64}
	for i := 0; i < 10; i++ {
		if target.ToolchainTriple() != "aarch64-pc-windows-gnullvm" {
			t.Fatal("ToolchainTriple changed between calls")
		}
		if target.PlatformTarget() != "windows.editor.arm_64" {
			t.Fatal("PlatformTarget changed between calls")
		}
	}
}
