package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsmith/internal/adapters/fs"
	"go.trai.ch/packsmith/internal/core/domain"
)

func TestResolver_ResolveInputs_Success(t *testing.T) {
	tmpDir := t.TempDir()
	for _, f := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, f), []byte("content"), 0o600))
	}

	resolved, err := fs.NewResolver().ResolveInputs([]string{"*.txt"}, tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.txt"),
		filepath.Join(tmpDir, "b.txt"),
	}, resolved)
}

func TestResolver_ResolveInputs_GlobError(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"["}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}

func TestResolver_ResolveInputs_NoMatches(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"*.nonexistent"}, t.TempDir())
	require.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestResolver_ResolveInputs_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "options.txt"), nil, 0o600))

	resolved, err := fs.NewResolver().ResolveInputs([]string{"options.txt", "*.txt"}, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "options.txt")}, resolved)
}

func TestResolver_ResolveInputs_AbsolutePattern(t *testing.T) {
	tmpDir := t.TempDir()
	abs := filepath.Join(tmpDir, "servers.dat")
	require.NoError(t, os.WriteFile(abs, nil, 0o600))

	resolved, err := fs.NewResolver().ResolveInputs([]string{abs}, "/elsewhere")
	require.NoError(t, err)
	assert.Equal(t, []string{abs}, resolved)
}
