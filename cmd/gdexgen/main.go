package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gdext-tools/gdexgen/internal/project"
	"github.com/gdext-tools/gdexgen/pkg"
	"github.com/gdext-tools/gdexgen/pkg/gdext"
	"github.com/gdext-tools/gdexgen/pkg/logging"
)

const version = "0.1.0"

var (
	configPath  string
	outputPath  string
	targetDir   string
	libName     string
	windowsABI  string
	baseDir     string
	projectRoot string
	force       bool
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "gdexgen",
		Short: "Generate a .gdextension manifest for a Godot native extension",
		Long: `gdexgen enumerates every supported platform/architecture/mode
combination of a Godot native extension, derives the compiled library
path for each, infers editor icons from source text and writes the
resulting .gdextension manifest.`,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML options file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path of the .gdextension file to write")
	rootCmd.Flags().StringVar(&targetDir, "target-dir", "", "build output root, relative to the base dir")
	rootCmd.Flags().StringVar(&libName, "lib-name", "", "library name in snake_case (default from GDEXGEN_LIB_NAME)")
	rootCmd.Flags().StringVar(&windowsABI, "windows-abi", "", "windows ABI: msvc, mingw or llvm")
	rootCmd.Flags().StringVar(&baseDir, "base-dir", "", "path base: project (res://) or manifest")
	rootCmd.Flags().StringVar(&projectRoot, "project-root", ".", "root scanned for sources during icon inference")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "rewrite the manifest even if it exists")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "print version and exit")
}

func run(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("gdexgen %s (%s)\n", version, getBuildTimestamp())
		return nil
	}

	// Pick up a .env next to the working directory before reading any
	// GDEXGEN_* variables. A missing file is fine.
	_ = godotenv.Load()

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("gdexgen", level, nil)

	fileOpts, err := loadFileOptions(configPath)
	if err != nil {
		return err
	}

	// Flags win over file values, file values over defaults.
	if outputPath == "" {
		outputPath = fileOpts.Manifest
	}
	if targetDir == "" {
		targetDir = fileOpts.TargetDir
	}
	if windowsABI == "" {
		windowsABI = fileOpts.WindowsABI
	}
	if baseDir == "" {
		baseDir = fileOpts.BaseDir
	}
	if libName == "" {
		libName = project.LibName(fileOpts.LibName)
	}

	abi, err := parseWindowsABI(windowsABI)
	if err != nil {
		return err
	}
	base, err := parseBaseDir(baseDir)
	if err != nil {
		return err
	}

	name := libName
	if name == "" {
		name = gdext.DefaultLibName
	}
	icons, err := fileOpts.Icons.iconsOptions(name)
	if err != nil {
		return err
	}

	opts := gdext.Options{
		ManifestPath:  outputPath,
		TargetDir:     targetDir,
		LibName:       libName,
		WindowsABI:    abi,
		BaseDir:       base,
		Force:         force,
		Configuration: fileOpts.Config.configuration(),
		Icons:         icons,
		Dependencies:  fileOpts.Dependencies,
		Logger:        logger,
	}

	if icons != nil {
		sources, err := project.DiscoverSources(projectRoot, fileOpts.SourceGlobs)
		if err != nil {
			return err
		}
		opts.Sources = sources
	}

	return pkg.GenerateManifest(opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gdexgen: %v\n", err)
		os.Exit(1)
	}
}
