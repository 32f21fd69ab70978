package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
}

func TestFindInPath_FirstDirectoryWins(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, filepath.Join(dirA, "subl"))
	writeFile(t, filepath.Join(dirB, "subl"))
	t.Setenv("PATH", dirA+string(os.PathListSeparator)+dirB)

	found, ok := FindInPath("subl")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(dirA, "subl"), found)
}

func TestFindInPath_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, ok := FindInPath("definitely-not-installed")

	assert.False(t, ok)
}

func TestFindInPath_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "code"), 0755))
	t.Setenv("PATH", dir)

	_, ok := FindInPath("code")

	assert.False(t, ok)
}

func TestLatestToolboxExecutable_PicksLexicographicallyGreatest(t *testing.T) {
	root := t.TempDir()
	for _, build := range []string{"1.2", "1.10", "2.0"} {
		writeFile(t, filepath.Join(root, "GoLand", "ch-0", build, "bin", "goland"))
	}

	found, ok := LatestToolboxExecutable(root, "GoLand", "goland")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "GoLand", "ch-0", "2.0", "bin", "goland"), found)
}

// Build folders are compared as strings, so "1.9" beats "1.10". This matches
// the Toolbox probing behavior and is intentionally left alone; real Toolbox
// build folder names are zero-padded and compare correctly.
func TestLatestToolboxExecutable_LexicographicOrderingLimitation(t *testing.T) {
	root := t.TempDir()
	for _, build := range []string{"1.9", "1.10"} {
		writeFile(t, filepath.Join(root, "IDEA-U", "ch-0", build, "bin", "idea"))
	}

	found, ok := LatestToolboxExecutable(root, "IDEA-U", "idea")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "IDEA-U", "ch-0", "1.9", "bin", "idea"), found)
}

func TestLatestToolboxExecutable_SkipsBuildsWithoutBinary(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "GoLand", "ch-0", "1.0", "bin", "goland"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "GoLand", "ch-0", "9.9"), 0755))

	found, ok := LatestToolboxExecutable(root, "GoLand", "goland")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "GoLand", "ch-0", "1.0", "bin", "goland"), found)
}

func TestLatestToolboxExecutable_MissingTree(t *testing.T) {
	_, ok := LatestToolboxExecutable(t.TempDir(), "GoLand", "goland")

	assert.False(t, ok)
}

func TestVendorExecutable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "WebStorm 2024.1", "bin", "webstorm64.exe"))

	found, ok := VendorExecutable(root, "webstorm64.exe")

	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "WebStorm 2024.1", "bin", "webstorm64.exe"), found)
}

func TestVendorExecutable_NoMatch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "SomeTool", "lib"), 0755))

	_, ok := VendorExecutable(root, "webstorm64.exe")

	assert.False(t, ok)
}

func TestFindUnderRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeFile(t, filepath.Join(rootB, "Microsoft VS Code", "Code.exe"))

	found, ok := FindUnderRoots(
		[]string{rootA, rootB},
		[]string{filepath.Join("Microsoft VS Code", "Code.exe")},
	)

	require.True(t, ok)
	assert.Equal(t, filepath.Join(rootB, "Microsoft VS Code", "Code.exe"), found)
}

func TestFindUnderRoots_SkipsEmptyRoots(t *testing.T) {
	_, ok := FindUnderRoots([]string{"", ""}, []string{"Code.exe"})

	assert.False(t, ok)
}
