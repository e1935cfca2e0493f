package platform

// Mode is a build mode an extension library can be compiled in.
type Mode int

const (
	// ModeDebug is a debug build.
	ModeDebug Mode = iota
	// ModeRelease is a release build.
	ModeRelease
	// ModeEditor is an editor-only build. The toolchain compiles it as a
	// debug build; only the Godot-side target name differs.
	ModeEditor
)

// Modes returns all build modes.
func Modes() []Mode {
	return []Mode{ModeDebug, ModeRelease, ModeEditor}
}

// ToolchainName returns the build-output folder name the toolchain uses
// for the mode. ModeEditor shares "debug" with ModeDebug.
func (m Mode) ToolchainName() string {
	switch m {
	case ModeRelease:
		return "release"
	default:
		return "debug"
	}
}

// PlatformName returns the mode component of a Godot platform target.
func (m Mode) PlatformName() string {
	switch m {
	case ModeRelease:
		return "release"
	case ModeEditor:
		return "editor"
	default:
		return "debug"
	}
}
