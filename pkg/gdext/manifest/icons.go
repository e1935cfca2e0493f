package manifest

import "path"

// IconPolicy selects the default icon assigned to entities found by
// base-class inference.
type IconPolicy int

const (
	// IconPolicyNone skips inferred entries entirely; only explicit
	// overrides end up in the icon table.
	IconPolicyNone IconPolicy = iota
	// IconPolicyBaseClass mirrors the editor icon of the entity's base
	// class: "{editor dir}/{base}.svg".
	IconPolicyBaseClass
	// IconPolicyCustomDefault uses one fixed path for every inferred
	// entity.
	IconPolicyCustomDefault
	// IconPolicyBundled uses one of the bundled node icons.
	IconPolicyBundled
)

// NodeIcon is one of the bundled default node icons.
type NodeIcon int

const (
	// NodeIconSmall is the small bundled logo icon.
	NodeIconSmall NodeIcon = iota
	// NodeIconLarge is the large bundled logo icon.
	NodeIconLarge
	// NodeIconFerris is the bundled Ferris icon.
	NodeIconFerris
)

// FileName returns the file name of the bundled icon.
func (n NodeIcon) FileName() string {
	switch n {
	case NodeIconLarge:
		return "NodeRustLarge.svg"
	case NodeIconFerris:
		return "NodeRustFerris.svg"
	default:
		return "NodeRustSmall.svg"
	}
}

// IconDirs holds the directories icon paths are built from. All are
// relative to the BaseDir marker; Editor and Custom are nested under
// Base.
type IconDirs struct {
	// Base is the root folder of all icons, conventionally "addons".
	Base string
	// Editor is the folder of editor icons under Base.
	Editor string
	// Custom is the folder of this extension's own icons under Base.
	Custom string
	// BaseDir selects the prefix for every icon path.
	BaseDir BaseDir
}

// DefaultIconDirs returns the conventional icon layout for a library
// name: addons/editor for editor icons and addons/{libName} for custom
// ones.
func DefaultIconDirs(libName string) IconDirs {
	return IconDirs{Base: "addons", Editor: "editor", Custom: libName, BaseDir: ProjectDir}
}

// IconsConfig drives the generation of the icons section.
type IconsConfig struct {
	// Policy is the default icon rule applied to inferred entities.
	Policy IconPolicy
	// CustomPath is the icon path under Base used with
	// IconPolicyCustomDefault.
	CustomPath string
	// Bundled selects the icon used with IconPolicyBundled.
	Bundled NodeIcon
	// BundledDir is the folder under Base holding the bundled icon
	// files, used with IconPolicyBundled.
	BundledDir string
	// Overrides maps an entity name to an icon path relative to the
	// Custom directory. Overrides always win over inferred entries.
	Overrides map[string]string
	// Dirs is the icon directory layout.
	Dirs IconDirs
}

// Icons builds the entity-to-icon-path table. Inferred entries are
// written first, one per entity under each base class, then overrides
// are applied on top; the later write wins.
func Icons(cfg IconsConfig, baseClasses map[string][]string) map[string]string {
	icons := make(map[string]string)

	if cfg.Policy != IconPolicyNone {
		prefix := cfg.Dirs.BaseDir.Prefix()
		for base, entities := range baseClasses {
			var p string
			switch cfg.Policy {
			case IconPolicyBaseClass:
				p = prefix + path.Join(cfg.Dirs.Base, cfg.Dirs.Editor, base) + ".svg"
			case IconPolicyCustomDefault:
				p = prefix + path.Join(cfg.Dirs.Base, cfg.CustomPath)
			case IconPolicyBundled:
				p = prefix + path.Join(cfg.Dirs.Base, cfg.BundledDir, cfg.Bundled.FileName())
			}
			for _, entity := range entities {
				icons[entity] = p
			}
		}
	}

	for entity, icon := range cfg.Overrides {
		icons[entity] = cfg.Dirs.BaseDir.Prefix() + path.Join(cfg.Dirs.Base, cfg.Dirs.Custom, icon)
	}

	return icons
}
