package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func TestDiscoverSourcesRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "lib.rs"), "a")
	writeFile(t, filepath.Join(root, "src", "player", "mod.rs"), "b")
	writeFile(t, filepath.Join(root, "src", "notes.txt"), "c")
	writeFile(t, filepath.Join(root, "build.rs"), "d")

	sources, err := DiscoverSources(root, nil)
	require.NoError(t, err)

	require.Len(t, sources, 2)
	// sorted by path, only *.rs under src/
	assert.Equal(t, "a", sources[0].Text)
	assert.Equal(t, "b", sources[1].Text)
}

func TestDiscoverSourcesCustomGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "scripts", "thing.gd"), "x")

	sources, err := DiscoverSources(root, []string{"scripts/**/*.gd"})
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "x", sources[0].Text)
}

func TestDiscoverSourcesEmptyTree(t *testing.T) {
	sources, err := DiscoverSources(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestLibName(t *testing.T) {
	t.Setenv(LibNameEnv, "my-cool-game")
	assert.Equal(t, "my_cool_game", LibName("rust"))

	t.Setenv(LibNameEnv, "")
	assert.Equal(t, "rust", LibName("rust"))
	assert.Equal(t, "fallback", LibName("fallback"))
}
