package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsmith/internal/adapters/fs"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"options.txt":                "fov:90",
		"config/jei/jei-client.ini":  "[advanced]",
		"kubejs/server_scripts/a.js": "//",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o750))

	var got []string
	for rel, err := range fs.NewWalker().WalkFiles(root) {
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	assert.Equal(t, []string{
		"config/jei/jei-client.ini",
		"kubejs/server_scripts/a.js",
		"options.txt",
	}, got)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var errs int
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing")) {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a": "", "b": "", "c": ""})

	count := 0
	for range fs.NewWalker().WalkFiles(root) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
